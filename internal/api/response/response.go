package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/rs/zerolog/log"
)

const (
	StatusSuccess         = "success"
	StatusError           = "error"
	StatusValidationError = "validation_error"
)

// Response 統一回應格式
type Response struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Data      any                 `json:"data,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Timestamp int64               `json:"timestamp"`
}

// Success 回傳成功結果
func Success(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
}

// ValidationError 回傳 422 與欄位錯誤
func ValidationError(w http.ResponseWriter, errs map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Status:    StatusValidationError,
		Message:   apperr.ErrStrMap[apperr.ValidationCode],
		Errors:    errs,
		Timestamp: time.Now().Unix(),
	})
}

// ErrorMessage 以指定 status 與訊息回傳錯誤
func ErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
}

// Error 將錯誤轉為回應
//
// AppError 依 Code 決定 status, 其他錯誤一律 500 且不回傳內部訊息
func Error(w http.ResponseWriter, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		log.Error().Err(err).Msg("unhandled error")
		ErrorMessage(w, http.StatusInternalServerError, apperr.ErrStrMap[apperr.InternalErrorCode])
		return
	}

	if appErr.Code == apperr.ValidationCode {
		ValidationError(w, appErr.Fields)
		return
	}

	if appErr.Code == apperr.InternalErrorCode {
		log.Error().Err(appErr).Msg("internal error")
	}
	ErrorMessage(w, appErr.HTTPStatus(), appErr.Message)
}

// NoContent 只回傳 status 不帶 body, 用於 CORS preflight
func NoContent(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
