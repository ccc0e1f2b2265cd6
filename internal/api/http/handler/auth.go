package handler

import (
	"context"
	"net/http"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (model.Session, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Register creates a new user with seeded categories and returns a session.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	req, err := decodePayload[registerRequest](r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.authService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: registration failed", "email", req.Email, "error", err.Error())
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse{
		Token: session.Token,
		User:  toUserResponse(session.User),
	})
}

// Login verifies credentials and returns a session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodePayload[loginRequest](r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed", "email", req.Email, "error", err.Error())
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse{
		Token: session.Token,
		User:  toUserResponse(session.User),
	})
}
