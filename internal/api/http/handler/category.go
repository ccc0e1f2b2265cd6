package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

const defaultCategoryColor = "#6366f1"

// CategoryService defines category operations.
type CategoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Category, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (model.Category, error)
}

// Category handles HTTP endpoints for expense categories.
type Category struct {
	categoryService CategoryService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(categoryService CategoryService, contextManager model.ContextManager, logger *logger.Logger) *Category {
	return &Category{
		categoryService: categoryService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// List returns the caller's categories.
func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	categories, err := h.categoryService.List(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	respondWithJSON(w, http.StatusOK, out)
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Create mints a category. Name and color arrive as query parameters, with
// a JSON body accepted as well.
func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	name := r.URL.Query().Get("name")
	color := r.URL.Query().Get("color")
	if name == "" {
		req, err := decodePayload[createCategoryRequest](r)
		if err == nil {
			name = req.Name
			if color == "" {
				color = req.Color
			}
		}
	}
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "category name is required")
		return
	}
	if color == "" {
		color = defaultCategoryColor
	}

	category, err := h.categoryService.Create(r.Context(), user.ID, name, color)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toCategoryResponse(category))
}
