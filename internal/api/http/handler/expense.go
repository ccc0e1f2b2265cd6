package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

const maxAttachmentMemory = 32 << 20

// ExpenseService defines expense CRUD and attachment operations.
type ExpenseService interface {
	Create(ctx context.Context, params model.CreateExpenseParams) (model.Expense, error)
	List(ctx context.Context, userID uuid.UUID, filter model.ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, id, userID uuid.UUID, params model.UpdateExpenseParams) (model.Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	AttachFile(ctx context.Context, id, userID uuid.UUID, attachment model.Attachment) (string, error)
}

// Expense handles HTTP endpoints for expense records.
type Expense struct {
	expenseService ExpenseService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewExpense creates a new Expense handler.
func NewExpense(expenseService ExpenseService, contextManager model.ContextManager, logger *logger.Logger) *Expense {
	return &Expense{
		expenseService: expenseService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the caller's expenses, date descending, paginated.
// Query: limit (default 50), offset, category_id, date_from, date_to.
func (h *Expense) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	filter := model.ExpenseFilter{Limit: model.DefaultListLimit}
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = offset
	}
	if v := q.Get("category_id"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		filter.CategoryID = categoryID
	}
	if v := q.Get("date_from"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date_from")
			return
		}
		filter.DateFrom = from
	}
	if v := q.Get("date_to"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date_to")
			return
		}
		filter.DateTo = to
	}

	expenses, err := h.expenseService.List(r.Context(), user.ID, filter)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toExpenseResponses(expenses))
}

type createExpenseRequest struct {
	Amount      float64 `json:"amount"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// Create stores a new expense for the caller.
func (h *Expense) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	req, err := decodePayload[createExpenseRequest](r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid category_id")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date")
		return
	}

	expense, err := h.expenseService.Create(r.Context(), model.CreateExpenseParams{
		UserID:      user.ID,
		Amount:      req.Amount,
		CategoryID:  categoryID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toExpenseResponse(expense))
}

type updateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	CategoryID  *string  `json:"category_id"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

// Update applies a partial update to the caller's expense.
func (h *Expense) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	req, err := decodePayload[updateExpenseRequest](r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	params := model.UpdateExpenseParams{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		params.CategoryID = &categoryID
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date")
			return
		}
		params.Date = &date
	}

	expense, err := h.expenseService.Update(r.Context(), id, user.ID, params)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toExpenseResponse(expense))
}

// Delete removes the caller's expense.
func (h *Expense) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	if err := h.expenseService.Delete(r.Context(), id, user.ID); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}

// UploadAttachment stores a multipart file as the expense's attachment.
func (h *Expense) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentMemory); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	ref, err := h.expenseService.AttachFile(r.Context(), id, user.ID, model.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        file,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":        "Attachment uploaded successfully",
		"attachment_ref": ref,
	})
}
