package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// AuthService resolves the caller's identity from a bearer token.
type AuthService interface {
	ResolveUser(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the
// request context.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Wrap guards next behind bearer-token authentication.
func (m *Authenticate) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			unauthorized(w, "missing authorization token")
			return
		}

		user, err := m.authService.ResolveUser(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("authentication failed", "error", err.Error())
			unauthorized(w, authFailureMessage(err))
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

const bearerPrefix = "Bearer "

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, model.ErrTokenInvalid):
		return "Invalid token"
	case errors.Is(err, model.ErrUserNotFound):
		return "User not found"
	default:
		return "Invalid token"
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"` + msg + `"}`))
}
