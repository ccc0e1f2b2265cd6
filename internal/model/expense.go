package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit is the page size applied when a list request carries none.
const DefaultListLimit = 50

// UnknownCategoryName is the denormalized snapshot written when the
// referenced category cannot be resolved.
const UnknownCategoryName = "Unknown"

// ExpenseStore defines persistence operations for expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (Expense, error)
	List(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]Expense, error)
	Update(ctx context.Context, id, userID uuid.UUID, params UpdateExpenseParams) (Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SetAttachment(ctx context.Context, id, userID uuid.UUID, ref string) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Expense represents a stored expense record. CategoryName is a denormalized
// snapshot taken at create/update time; it is not kept in sync if the
// category is later renamed.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        float64
	CategoryID    uuid.UUID
	CategoryName  string
	Description   string
	Date          time.Time
	AttachmentRef string
	CreatedAt     time.Time
}

// ExpenseFilter narrows a List call. Zero values mean "no constraint";
// Limit <= 0 disables pagination.
type ExpenseFilter struct {
	CategoryID uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	Limit      int
	Offset     int
}

// UpdateExpenseParams carries a partial update; nil fields are left unchanged.
type UpdateExpenseParams struct {
	Amount       *float64
	CategoryID   *uuid.UUID
	CategoryName *string
	Description  *string
	Date         *time.Time
}

// CreateExpenseParams contains parameters to create an expense.
type CreateExpenseParams struct {
	UserID      uuid.UUID
	Amount      float64
	CategoryID  uuid.UUID
	Description string
	Date        time.Time
}

// Attachment is an uploaded file bound to an expense.
type Attachment struct {
	Filename    string
	ContentType string
	Data        io.Reader
}
