package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerPrefix = "https://securetoken.google.com/"

// FirebaseVerifier 驗證 firebase id token
//
// 檢查 RS256 簽章, exp 必填, aud 為 project id, iss 為 securetoken issuer
type FirebaseVerifier struct {
	projectID string
	keys      *CertKeySource
	parser    *jwt.Parser
}

// NewFirebaseVerifier 建立 FirebaseVerifier
//
// 錯誤:
//   - projectID 為空
func NewFirebaseVerifier(projectID string, keys *CertKeySource) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project id is required")
	}
	if keys == nil {
		keys = NewCertKeySource("", nil)
	}
	return &FirebaseVerifier{
		projectID: projectID,
		keys:      keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithAudience(projectID),
			jwt.WithIssuer(issuerPrefix+projectID),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	token, err := ExtractToken(raw)
	if err != nil {
		return nil, err
	}
	parts, err := splitSegments(token)
	if err != nil {
		return nil, err
	}
	if _, err := decodePayload(parts[1]); err != nil {
		return nil, err
	}

	mapClaims := jwt.MapClaims{}
	_, err = v.parser.ParseWithClaims(token, mapClaims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKeyID
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return nil, classify(err)
	}

	return claimsFromMap(mapClaims)
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrInvalidTokenPayload, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
}

// ResolveProjectID projectID 為空時改從 service account json 的 project_id 取得
func ResolveProjectID(projectID, credentialsPath string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}
	if credentialsPath == "" {
		return "", errors.New("firebase project id not configured")
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return "", fmt.Errorf("read firebase credentials: %w", err)
	}
	var cred struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", fmt.Errorf("parse firebase credentials: %w", err)
	}
	if cred.ProjectID == "" {
		return "", errors.New("project_id missing in firebase credentials")
	}
	return cred.ProjectID, nil
}
