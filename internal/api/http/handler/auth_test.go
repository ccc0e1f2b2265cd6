package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastor/gastor-server/internal/model"
	"github.com/gastor/gastor-server/internal/testutil"
)

type fakeAuthService struct {
	session model.Session
	err     error

	email    string
	name     string
	password string
}

func (f *fakeAuthService) Register(_ context.Context, email, name, password string) (model.Session, error) {
	f.email, f.name, f.password = email, name, password
	return f.session, f.err
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (model.Session, error) {
	f.email, f.password = email, password
	return f.session, f.err
}

func TestAuth_Register(t *testing.T) {
	user := model.User{
		ID:        uuid.New(),
		Email:     "new@example.com",
		Name:      "New User",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{session: model.Session{Token: "session-token", User: user}}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		body := `{"email":"new@example.com","name":"New User","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := doRequest(h.Register, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp sessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "session-token", resp.Token)
		assert.Equal(t, user.ID.String(), resp.User.ID)
		assert.Equal(t, "new@example.com", resp.User.Email)
		assert.Equal(t, "2024-01-01T12:00:00Z", resp.User.CreatedAt)

		assert.Equal(t, "new@example.com", svc.email)
		assert.Equal(t, "New User", svc.name)
		assert.Equal(t, "password123", svc.password)
	})

	t.Run("email taken", func(t *testing.T) {
		svc := &fakeAuthService{err: model.ErrEmailTaken}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		body := `{"email":"taken@example.com","name":"X","password":"p"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := doRequest(h.Register, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Email already registered", resp.Detail)
	})

	t.Run("malformed payload", func(t *testing.T) {
		h := NewAuth(&fakeAuthService{}, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not-json"))
		rec := doRequest(h.Register, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := model.User{ID: uuid.New(), Email: "user@example.com"}
		svc := &fakeAuthService{session: model.Session{Token: "session-token", User: user}}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		body := `{"email":"user@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := doRequest(h.Login, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp sessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "session-token", resp.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{err: model.ErrInvalidCredentials}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		body := `{"email":"user@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := doRequest(h.Login, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid credentials", resp.Detail)
	})
}

func TestHealth_Check(t *testing.T) {
	h := NewHealth()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := doRequest(h.Check, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "Gastor API", resp["message"])
}
