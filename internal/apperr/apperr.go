package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode 同時也是對應的 HTTP status
type ErrorCode int

const (
	BadRequestCode      ErrorCode = http.StatusBadRequest
	UnauthenticatedCode ErrorCode = http.StatusUnauthorized
	ForbiddenCode       ErrorCode = http.StatusForbidden
	NotFoundCode        ErrorCode = http.StatusNotFound
	MethodNotAllowCode  ErrorCode = http.StatusMethodNotAllowed
	ConflictCode        ErrorCode = http.StatusConflict
	ValidationCode      ErrorCode = http.StatusUnprocessableEntity
	TooManyRequestsCode ErrorCode = http.StatusTooManyRequests
	InternalErrorCode   ErrorCode = http.StatusInternalServerError
)

// ErrStrMap 各錯誤碼的預設訊息
var ErrStrMap = map[ErrorCode]string{
	BadRequestCode:      "Bad request",
	UnauthenticatedCode: "Unauthorized",
	ForbiddenCode:       "Forbidden",
	NotFoundCode:        "Resource not found",
	MethodNotAllowCode:  "Method not allowed",
	ConflictCode:        "Conflict",
	ValidationCode:      "Validation failed",
	TooManyRequestsCode: "Too many requests",
	InternalErrorCode:   "Internal server error",
}

// AppError 服務層回傳給 handler 的錯誤
//
// Code 決定 HTTP status, Message 會直接回給 client,
// Err 為內部原因只寫 log, Fields 僅在 ValidationCode 時有值
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("code: %d, message: %s, err: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 取得對應的 HTTP status code
func (e *AppError) HTTPStatus() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return int(e.Code)
}

// New 建立 AppError, message 為空時使用 ErrStrMap 的預設值
func New(code ErrorCode, message string) *AppError {
	if message == "" {
		message = ErrStrMap[code]
	}
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 建立帶有內部原因的 AppError
func Wrap(code ErrorCode, err error, message string) *AppError {
	appErr := New(code, message)
	appErr.Err = err
	return appErr
}

// Validation 建立欄位驗證錯誤
func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Code:    ValidationCode,
		Message: ErrStrMap[ValidationCode],
		Fields:  fields,
	}
}

// Internal 包裝非預期錯誤, 訊息一律使用預設值避免洩漏內部細節
func Internal(err error) *AppError {
	return Wrap(InternalErrorCode, err, "")
}

// As 從錯誤鏈中取出 AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf 取得錯誤碼, 非 AppError 一律視為 InternalErrorCode
func CodeOf(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return InternalErrorCode
}

// IsCode 判斷錯誤鏈中的 AppError 是否為指定錯誤碼
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
