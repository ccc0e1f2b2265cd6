package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Expense provides per-user expense operations including attachments.
type Expense struct {
	expenseStore  model.ExpenseStore
	categoryStore model.CategoryStore
	storage       model.Storage
	logger        *logger.Logger
}

func NewExpense(
	expenseStore model.ExpenseStore,
	categoryStore model.CategoryStore,
	storage model.Storage,
	logger *logger.Logger,
) *Expense {
	return &Expense{
		expenseStore:  expenseStore,
		categoryStore: categoryStore,
		storage:       storage,
		logger:        logger,
	}
}

// resolveCategoryName reads the current category name for the snapshot.
// An unresolvable id yields the fallback label instead of an error.
func (s *Expense) resolveCategoryName(ctx context.Context, categoryID uuid.UUID) (string, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if errors.Is(err, model.ErrNotFound) {
		return model.UnknownCategoryName, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get category by id: %w", err)
	}
	return category.Name, nil
}

// Create stores a new expense, snapshotting the category name at write time.
func (s *Expense) Create(ctx context.Context, params model.CreateExpenseParams) (model.Expense, error) {
	categoryName, err := s.resolveCategoryName(ctx, params.CategoryID)
	if err != nil {
		return model.Expense{}, err
	}

	expense := model.Expense{
		ID:           uuid.New(),
		UserID:       params.UserID,
		Amount:       params.Amount,
		CategoryID:   params.CategoryID,
		CategoryName: categoryName,
		Description:  params.Description,
		Date:         params.Date,
		CreatedAt:    time.Now().UTC(),
	}

	expense, err = s.expenseStore.Create(ctx, expense)
	if err != nil {
		s.logger.Error("Expense service: failed to create expense", "user_id", params.UserID, "error", err.Error())
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// List returns the user's expenses, date descending, with the category name
// re-resolved against current categories. The stored snapshot is kept when
// the category no longer resolves.
func (s *Expense) List(ctx context.Context, userID uuid.UUID, filter model.ExpenseFilter) ([]model.Expense, error) {
	if filter.Limit <= 0 {
		filter.Limit = model.DefaultListLimit
	}

	expenses, err := s.expenseStore.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	categories, err := s.categoryStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by user id: %w", err)
	}

	namesByID := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		namesByID[category.ID] = category.Name
	}

	for i := range expenses {
		if name, ok := namesByID[expenses[i].CategoryID]; ok {
			expenses[i].CategoryName = name
		}
	}

	return expenses, nil
}

// Update applies a partial update. Changing the category re-resolves and
// overwrites the denormalized name snapshot.
func (s *Expense) Update(ctx context.Context, id, userID uuid.UUID, params model.UpdateExpenseParams) (model.Expense, error) {
	if params.CategoryID != nil {
		categoryName, err := s.resolveCategoryName(ctx, *params.CategoryID)
		if err != nil {
			return model.Expense{}, err
		}
		params.CategoryName = &categoryName
	}

	expense, err := s.expenseStore.Update(ctx, id, userID, params)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// Delete removes the user's expense together with its attachment object.
func (s *Expense) Delete(ctx context.Context, id, userID uuid.UUID) error {
	expense, err := s.expenseStore.GetByID(ctx, id, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get expense by id: %w", err)
	}

	err = s.expenseStore.Delete(ctx, id, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.removeAttachmentObject(ctx, expense.AttachmentRef)

	return nil
}

// removeAttachmentObject deletes the stored object behind ref, if any.
// Best-effort: the expense row is already gone or repointed, so a storage
// failure is logged rather than surfaced.
func (s *Expense) removeAttachmentObject(ctx context.Context, ref string) {
	if ref == "" {
		return
	}

	exists, err := s.storage.Exists(ctx, ref)
	if err != nil {
		s.logger.Error("Expense service: failed to stat attachment object", "ref", ref, "error", err.Error())
		return
	}
	if !exists {
		return
	}

	if err := s.storage.Delete(ctx, ref); err != nil {
		s.logger.Error("Expense service: failed to delete attachment object", "ref", ref, "error", err.Error())
	}
}

// AttachFile uploads the file to object storage and stores the object key
// on the expense as its attachment reference. Replacing an attachment
// removes the previous object.
func (s *Expense) AttachFile(ctx context.Context, id, userID uuid.UUID, attachment model.Attachment) (string, error) {
	expense, err := s.expenseStore.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get expense by id: %w", err)
	}

	key := path.Join("attachments", id.String(), uuid.NewString()+"-"+path.Base(attachment.Filename))

	if err := s.storage.Upload(ctx, key, attachment.Data); err != nil {
		s.logger.Error("Expense service: failed to upload attachment", "expense_id", id, "error", err.Error())
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	if err := s.expenseStore.SetAttachment(ctx, id, userID, key); err != nil {
		return "", fmt.Errorf("failed to set attachment: %w", err)
	}

	s.removeAttachmentObject(ctx, expense.AttachmentRef)

	return key, nil
}
