package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Category provides per-user category operations.
type Category struct {
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewCategory(categoryStore model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

// List returns the user's categories in stored order.
func (s *Category) List(ctx context.Context, userID uuid.UUID) ([]model.Category, error) {
	categories, err := s.categoryStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by user id: %w", err)
	}

	return categories, nil
}

// Create mints a new category for the user.
func (s *Category) Create(ctx context.Context, userID uuid.UUID, name, color string) (model.Category, error) {
	category := model.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	category, err := s.categoryStore.Create(ctx, category)
	if err != nil {
		s.logger.Error("Category service: failed to create category", "user_id", userID, "error", err.Error())
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
