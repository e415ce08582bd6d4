package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/rs/zerolog/log"
)

type IAuthService interface {
	Login(ctx context.Context, firebaseToken string) (*model.UserModel, error)
	RefreshToken(ctx context.Context, authorization string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	CurrentUser(ctx context.Context, claims *identity.Claims, requireActive bool) (*model.UserModel, error)
}

type AuthService struct {
	verifier    identity.Verifier
	userService IUserService
}

func NewAuthService(verifier identity.Verifier, userService IUserService) *AuthService {
	if verifier == nil {
		panic("NewAuthService: verifier cannot be nil")
	}
	if userService == nil {
		panic("NewAuthService: userService cannot be nil")
	}
	return &AuthService{
		verifier:    verifier,
		userService: userService,
	}
}

// Login 以 identity provider 簽發的 token 登入
// 參數:
//   - ctx: 上下文
//   - firebaseToken: id token, 可帶 Bearer 前綴
//
// 錯誤:
//   - apperr.BadRequestCode 400: token 為空
//   - apperr.UnauthenticatedCode 401: token 無效或過期
//   - apperr.NotFoundCode 404: 使用者不存在
//   - apperr.ForbiddenCode 403: 使用者未啟用
func (a *AuthService) Login(ctx context.Context, firebaseToken string) (*model.UserModel, error) {
	if strings.TrimSpace(firebaseToken) == "" {
		return nil, apperr.New(apperr.BadRequestCode, "Firebase token is required")
	}

	claims, err := a.verifier.Verify(ctx, firebaseToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.UnauthenticatedCode, err, "Invalid or expired token")
	}

	return a.CurrentUser(ctx, claims, true)
}

// RefreshToken 驗證 Authorization header 並回傳其中的 token
func (a *AuthService) RefreshToken(ctx context.Context, authorization string) (string, error) {
	token, err := identity.ExtractToken(authorization)
	if err != nil {
		return "", apperr.Wrap(apperr.UnauthenticatedCode, err, "Authorization header is required")
	}
	if _, err := a.verifier.Verify(ctx, token); err != nil {
		return "", apperr.Wrap(apperr.UnauthenticatedCode, err, "Invalid or expired token")
	}
	return token, nil
}

// ForgotPassword 重設信由 identity provider 從前端寄出, 這裡不論帳號是否存在都回傳成功
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return apperr.New(apperr.BadRequestCode, "Email is required")
	}

	user, err := a.userService.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Int64("user_id", user.ID).Msg("password reset requested")
	case !apperr.IsCode(err, apperr.NotFoundCode):
		log.Error().Err(err).Msg("lookup user for password reset")
	}
	return nil
}

// CurrentUser 由驗證過的 claims 取得使用者
//
// requireActive 為 true 時, 非 active 使用者回傳 403
func (a *AuthService) CurrentUser(ctx context.Context, claims *identity.Claims, requireActive bool) (*model.UserModel, error) {
	if claims == nil || claims.Subject == "" {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Authentication failed")
	}

	user, err := a.userService.GetUserByFirebaseUID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if requireActive && !user.IsActive() {
		return nil, apperr.New(apperr.ForbiddenCode, "User account is not active")
	}
	return user, nil
}
