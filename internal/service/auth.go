package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Auth handles registration, login and per-request identity resolution.
type Auth struct {
	userStore     model.UserStore
	categoryStore model.CategoryStore
	tokenManager  model.TokenManager
	logger        *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	categoryStore model.CategoryStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:     userStore,
		categoryStore: categoryStore,
		tokenManager:  tokenManager,
		logger:        logger,
	}
}

// Register creates a user, seeds the default categories and issues a token.
// Email matching is case-sensitive exact.
func (a *Auth) Register(ctx context.Context, email, name, password string) (model.Session, error) {
	a.logger.Debug("Auth service: registering user", "email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.Session{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	for _, seed := range model.DefaultCategories {
		_, err := a.categoryStore.Create(ctx, model.Category{
			ID:        uuid.New(),
			UserID:    user.ID,
			Name:      seed.Name,
			Color:     seed.Color,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return model.Session{}, fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
		}
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", user.ID)

	return model.Session{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Session, error) {
	a.logger.Debug("Auth service: logging in user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "email", email, "user_id", user.ID)

	return model.Session{Token: token, User: user}, nil
}

// ResolveUser is the authorization step gating every protected route: it
// validates the token and loads the identified user.
func (a *Auth) ResolveUser(ctx context.Context, token string) (model.User, error) {
	userID, err := a.tokenManager.Parse(token)
	if err != nil {
		return model.User{}, err
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
