package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/identity"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	Errors    map[string][]string `json:"errors"`
	Timestamp int64               `json:"timestamp"`
}

func newRuleBook(t *testing.T) *validator.RuleBook {
	t.Helper()
	rules, err := validator.NewRuleBook()
	require.NoError(t, err)
	return rules
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, user *model.UserModel) *http.Request {
	return req.WithContext(util.WithUser(req.Context(), user))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotZero(t, env.Timestamp)
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func testUser(id int64, role string) *model.UserModel {
	now := time.Now().UTC()
	return &model.UserModel{
		ID:          id,
		FirebaseUID: util.RandomString(12),
		Email:       util.RandomEmail(),
		FullName:    "Test User",
		Phone:       "0912345678",
		Role:        role,
		Status:      constants.UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type fakeUserService struct {
	register func(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
}

func (f *fakeUserService) Register(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	return f.register(ctx, arg)
}

func (f *fakeUserService) GetUserByID(context.Context, int64) (*model.UserModel, error) {
	panic("unexpected call")
}

func (f *fakeUserService) GetUserByFirebaseUID(context.Context, string) (*model.UserModel, error) {
	panic("unexpected call")
}

func (f *fakeUserService) GetUserByEmail(context.Context, string) (*model.UserModel, error) {
	panic("unexpected call")
}

type fakeAuthService struct {
	login          func(ctx context.Context, token string) (*model.UserModel, error)
	refreshToken   func(ctx context.Context, authorization string) (string, error)
	forgotPassword func(ctx context.Context, email string) error
}

func (f *fakeAuthService) Login(ctx context.Context, token string) (*model.UserModel, error) {
	return f.login(ctx, token)
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, authorization string) (string, error) {
	return f.refreshToken(ctx, authorization)
}

func (f *fakeAuthService) ForgotPassword(ctx context.Context, email string) error {
	return f.forgotPassword(ctx, email)
}

func (f *fakeAuthService) CurrentUser(context.Context, *identity.Claims, bool) (*model.UserModel, error) {
	panic("unexpected call")
}
