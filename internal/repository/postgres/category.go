package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gastor/gastor-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Category, error) {
	query := `SELECT id, user_id, name, color, created_at
			  FROM categories WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by user id: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Color, &category.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	var category model.Category
	query := `SELECT id, user_id, name, color, created_at
			  FROM categories WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID, &category.UserID, &category.Name, &category.Color, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (id, user_id, name, color, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, user_id, name, color, created_at`

	var savedCategory model.Category
	err := r.db.QueryRow(ctx, query,
		category.ID, category.UserID, category.Name, category.Color, category.CreatedAt,
	).Scan(
		&savedCategory.ID, &savedCategory.UserID, &savedCategory.Name, &savedCategory.Color, &savedCategory.CreatedAt,
	)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return savedCategory, nil
}
