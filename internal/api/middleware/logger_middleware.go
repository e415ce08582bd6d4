package middleware

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *StatusRecoder) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *StatusRecoder) Status() int {
	return w.status
}

// requestLog 由內層 middleware 補上驗證後的 subject
type requestLog struct {
	subject string
}

type requestLogKey struct{}

func setLogSubject(ctx context.Context, subject string) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.subject = subject
	}
}

// 記錄request 請求
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recoder := &StatusRecoder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}
			rl := &requestLog{subject: "anonymous"}
			ctx := context.WithValue(r.Context(), requestLogKey{}, rl)

			next.ServeHTTP(recoder, r.WithContext(ctx))

			event := logger.Info()
			if recoder.Status() >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.
				Str("request_id", util.GetRequestID(r.Context())).
				Str("subject", rl.subject).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
