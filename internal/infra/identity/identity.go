package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken 沒有提供 token
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidTokenFormat token 不是三段式
	ErrInvalidTokenFormat = errors.New("invalid token format")
	// ErrInvalidTokenPayload payload 無法解碼或缺少 subject
	ErrInvalidTokenPayload = errors.New("invalid token payload")
	// ErrInvalidSignature 簽章錯誤或找不到對應的公鑰
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired token 已過期
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidClaims aud / iss / iat 不符
	ErrInvalidClaims = errors.New("invalid token claims")
)

const bearerPrefix = "bearer "

// Claims 驗證後取得的身分資訊
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
	Raw       map[string]any
}

// Verifier 驗證 Authorization header 或 raw token
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// ExtractToken 移除 "Bearer " 前綴 (不分大小寫)
func ExtractToken(header string) (string, error) {
	token := strings.TrimSpace(header)
	if strings.EqualFold(token, strings.TrimSpace(bearerPrefix)) {
		return "", ErrMissingToken
	}
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// splitSegments 檢查 token 為 header.payload.signature 三段
func splitSegments(token string) ([]string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidTokenFormat
	}
	return parts, nil
}

// decodePayload 解碼中間段 (base64url) 並解析為 JSON 物件
func decodePayload(segment string) (map[string]any, error) {
	data, err := jwt.NewParser().DecodeSegment(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenPayload, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		return nil, ErrInvalidTokenPayload
	}
	return payload, nil
}

// claimsFromMap subject 先取 sub, 沒有再取 uid
func claimsFromMap(payload map[string]any) (*Claims, error) {
	claims := &Claims{Raw: payload}

	if sub, ok := payload["sub"].(string); ok && sub != "" {
		claims.Subject = sub
	} else if uid, ok := payload["uid"].(string); ok && uid != "" {
		claims.Subject = uid
	} else {
		return nil, fmt.Errorf("%w: subject not found", ErrInvalidTokenPayload)
	}

	if email, ok := payload["email"].(string); ok {
		claims.Email = email
	}
	if exp, ok := payload["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}

// PayloadDecoder 只解碼 payload, 不驗證簽章
//
// 僅供本機開發使用 (IDENTITY_VERIFY_SIGNATURE=false)
type PayloadDecoder struct{}

func NewPayloadDecoder() *PayloadDecoder {
	return &PayloadDecoder{}
}

func (d *PayloadDecoder) Verify(_ context.Context, raw string) (*Claims, error) {
	token, err := ExtractToken(raw)
	if err != nil {
		return nil, err
	}
	parts, err := splitSegments(token)
	if err != nil {
		return nil, err
	}
	payload, err := decodePayload(parts[1])
	if err != nil {
		return nil, err
	}
	return claimsFromMap(payload)
}
