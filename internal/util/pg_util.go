package util

import "github.com/jackc/pgx/v5/pgtype"

// StringToPgText nil 或空字串轉為 NULL
func StringToPgText(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// PgTextToString NULL 轉為 nil
func PgTextToString(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
