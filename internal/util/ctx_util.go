package util

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

// WithClaims 將驗證後的身分資訊放入 context
func WithClaims(ctx context.Context, claims *identity.Claims) context.Context {
	return context.WithValue(ctx, constants.AuthorizationClaimsKey, claims)
}

// GetClaimsFromContext 取得身分資訊, 未驗證時回傳 nil
func GetClaimsFromContext(ctx context.Context) *identity.Claims {
	if v, ok := ctx.Value(constants.AuthorizationClaimsKey).(*identity.Claims); ok {
		return v
	}
	return nil
}

// GetRequestID 取得 request id, 不存在時回傳 "unknown"
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithUser 將目前使用者放入 context
func WithUser(ctx context.Context, user *model.UserModel) context.Context {
	return context.WithValue(ctx, constants.CurrentUserKey, user)
}

// GetUserFromContext 取得目前使用者, 未載入時回傳 nil
func GetUserFromContext(ctx context.Context) *model.UserModel {
	if v, ok := ctx.Value(constants.CurrentUserKey).(*model.UserModel); ok {
		return v
	}
	return nil
}
