package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CategoryStore defines persistence operations for expense categories.
type CategoryStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
}

// Category represents a named, colored expense category owned by a user.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
}

// DefaultCategory is a category seeded for every new user.
type DefaultCategory struct {
	Name  string
	Color string
}

// DefaultCategories are seeded exactly once at registration.
var DefaultCategories = []DefaultCategory{
	{Name: "Food", Color: "#ef4444"},
	{Name: "Transport", Color: "#f97316"},
	{Name: "Entertainment", Color: "#8b5cf6"},
	{Name: "Health", Color: "#10b981"},
	{Name: "Utilities", Color: "#3b82f6"},
	{Name: "Other", Color: "#6b7280"},
}
