package util

import (
	"context"
	"math"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/stretchr/testify/require"
)

func TestNewPaging(t *testing.T) {
	testCases := []struct {
		raw    string
		page   int
		offset int32
	}{
		{raw: "", page: 1, offset: 0},
		{raw: "1", page: 1, offset: 0},
		{raw: "3", page: 3, offset: 40},
		{raw: "0", page: 1, offset: 0},
		{raw: "-2", page: 1, offset: 0},
		{raw: "abc", page: 1, offset: 0},
		{raw: "107374183", page: 107374183, offset: 2147483640},
		{raw: "107374184", page: 107374183, offset: 2147483640},
		{raw: "9223372036854775807", page: 107374183, offset: 2147483640},
		{raw: "99999999999999999999", page: 107374183, offset: 2147483640},
		{raw: "-99999999999999999999", page: 1, offset: 0},
	}

	for _, tc := range testCases {
		p := NewPaging(tc.raw)
		require.Equal(t, tc.page, p.Page, tc.raw)
		require.Equal(t, tc.offset, p.Offset(), tc.raw)
		require.Equal(t, int32(20), p.Limit())
	}
}

func TestPagingOffsetSaturates(t *testing.T) {
	p := Paging{Page: math.MaxInt, PageSize: 20}
	require.Equal(t, int32(math.MaxInt32), p.Offset())

	p = Paging{Page: 0, PageSize: 20}
	require.Equal(t, int32(0), p.Offset())
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, GetClaimsFromContext(ctx))

	claims := &identity.Claims{Subject: "uid-1"}
	ctx = WithClaims(ctx, claims)
	require.Equal(t, claims, GetClaimsFromContext(ctx))
}

func TestGetRequestID(t *testing.T) {
	require.Equal(t, "unknown", GetRequestID(context.Background()))
	ctx := context.WithValue(context.Background(), constants.RequestIDKey, "req-1")
	require.Equal(t, "req-1", GetRequestID(ctx))
}

func TestPgText(t *testing.T) {
	empty := ""
	require.False(t, StringToPgText(nil).Valid)
	require.False(t, StringToPgText(&empty).Valid)

	s := "hello"
	text := StringToPgText(&s)
	require.True(t, text.Valid)
	require.Equal(t, "hello", *PgTextToString(text))
	require.Nil(t, PgTextToString(StringToPgText(nil)))
}
