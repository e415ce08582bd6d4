package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware 驗證 Authorization header, 成功後將 claims 放入 context
//
// 沒有 header 或格式錯誤回傳 401 "Authorization header is required",
// 驗證失敗回傳 401 "Invalid or expired token"
func AuthMiddleware(verifier identity.Verifier) func(http.Handler) http.Handler {
	if verifier == nil {
		panic("AuthMiddleware: verifier cannot be nil")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := identity.ExtractToken(r.Header.Get("Authorization"))
			if err != nil {
				response.Error(w, apperr.Wrap(apperr.UnauthenticatedCode, err, "Authorization header is required"))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("request_id", util.GetRequestID(r.Context())).Msg("token rejected")
				response.Error(w, apperr.Wrap(apperr.UnauthenticatedCode, err, "Invalid or expired token"))
				return
			}

			setLogSubject(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(util.WithClaims(r.Context(), claims)))
		})
	}
}

// UserMiddleware 依 claims 載入目前使用者, 需放在 AuthMiddleware 之後
//
// requireActive 為 true 時非 active 使用者回傳 403
func UserMiddleware(authService service.IAuthService, requireActive bool) func(http.Handler) http.Handler {
	if authService == nil {
		panic("UserMiddleware: authService cannot be nil")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := util.GetClaimsFromContext(r.Context())
			user, err := authService.CurrentUser(r.Context(), claims, requireActive)
			if err != nil {
				response.Error(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(util.WithUser(r.Context(), user)))
		})
	}
}
