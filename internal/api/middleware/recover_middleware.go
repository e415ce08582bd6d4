package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog/log"
)

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Error().
					Str("request_id", util.GetRequestID(r.Context())).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				response.ErrorMessage(w, http.StatusInternalServerError, apperr.ErrStrMap[apperr.InternalErrorCode])
			}
		}()

		next.ServeHTTP(w, r)
	})
}
