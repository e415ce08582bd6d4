package db

import (
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
	ForeignKeyViolation = "23503"
)

// IsNoRows 查無資料
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// ErrorCode 取得 postgres 錯誤碼, 非 PgError 時回傳空字串
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ClassifyError 將資料庫錯誤轉為 AppError
//
//   - pgx.ErrNoRows -> NotFound (notFoundMsg)
//   - unique / check / fk violation -> Conflict
//   - 其他 -> Internal
func ClassifyError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	if IsNoRows(err) {
		return apperr.Wrap(apperr.NotFoundCode, err, notFoundMsg)
	}
	switch ErrorCode(err) {
	case UniqueViolation:
		return apperr.Wrap(apperr.ConflictCode, err, "Resource already exists")
	case CheckViolation, ForeignKeyViolation:
		return apperr.Wrap(apperr.ConflictCode, err, "Request conflicts with current state")
	}
	return apperr.Internal(err)
}
