package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gastor/gastor-server/internal/model"
)

var _ model.ExpenseStore = (*ExpenseRepository)(nil)

type ExpenseRepository struct {
	db *Connection
}

func NewExpenseRepository(db *Connection) *ExpenseRepository {
	return &ExpenseRepository{
		db: db,
	}
}

// Expense dates are persisted as RFC3339 UTC text. Lexical comparison on
// these strings matches chronological order, so range filters and the
// date-descending sort run directly on the column.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseStoredDate reads a persisted date, tolerating values written without
// a zone suffix (treated as UTC).
func parseStoredDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", s, err)
	}
	return t.UTC(), nil
}

type expenseRow struct {
	expense       model.Expense
	date          string
	attachmentRef *string
}

func (row *expenseRow) toExpense() (model.Expense, error) {
	expense := row.expense
	date, err := parseStoredDate(row.date)
	if err != nil {
		return model.Expense{}, err
	}
	expense.Date = date
	if row.attachmentRef != nil {
		expense.AttachmentRef = *row.attachmentRef
	}
	return expense, nil
}

const expenseColumns = `id, user_id, amount, category_id, category_name, description, date, attachment_ref, created_at`

func scanExpense(scan func(dest ...any) error) (model.Expense, error) {
	var row expenseRow
	err := scan(
		&row.expense.ID, &row.expense.UserID, &row.expense.Amount,
		&row.expense.CategoryID, &row.expense.CategoryName, &row.expense.Description,
		&row.date, &row.attachmentRef, &row.expense.CreatedAt,
	)
	if err != nil {
		return model.Expense{}, err
	}
	return row.toExpense()
}

func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (model.Expense, error) {
	query := `INSERT INTO expenses (id, user_id, amount, category_id, category_name, description, date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + expenseColumns

	saved, err := scanExpense(r.db.QueryRow(ctx, query,
		expense.ID, expense.UserID, expense.Amount, expense.CategoryID,
		expense.CategoryName, expense.Description, formatDate(expense.Date), expense.CreatedAt,
	).Scan)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return saved, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`

	expense, err := scanExpense(r.db.QueryRow(ctx, query, id, userID).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, fmt.Errorf("failed to get expense by id: %w", err)
	}

	return expense, nil
}

func (r *ExpenseRepository) List(ctx context.Context, userID uuid.UUID, filter model.ExpenseFilter) ([]model.Expense, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`)
	args := []any{userID}

	if filter.CategoryID != uuid.Nil {
		args = append(args, filter.CategoryID)
		fmt.Fprintf(&sb, " AND category_id = $%d", len(args))
	}
	if !filter.DateFrom.IsZero() {
		args = append(args, formatDate(filter.DateFrom))
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, formatDate(filter.DateTo))
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY date DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id, userID uuid.UUID, params model.UpdateExpenseParams) (model.Expense, error) {
	sets := make([]string, 0, 5)
	args := []any{id, userID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Amount != nil {
		addSet("amount", *params.Amount)
	}
	if params.CategoryID != nil {
		addSet("category_id", *params.CategoryID)
	}
	if params.CategoryName != nil {
		addSet("category_name", *params.CategoryName)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.Date != nil {
		addSet("date", formatDate(*params.Date))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	query := fmt.Sprintf(
		`UPDATE expenses SET %s WHERE id = $1 AND user_id = $2 RETURNING %s`,
		strings.Join(sets, ", "), expenseColumns,
	)

	updated, err := scanExpense(r.db.QueryRow(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Expense{}, model.ErrNotFound
		}
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return updated, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	const query = `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) SetAttachment(ctx context.Context, id, userID uuid.UUID, ref string) error {
	const query = `UPDATE expenses SET attachment_ref = $3 WHERE id = $1 AND user_id = $2`
	cmd, err := r.db.Exec(ctx, query, id, userID, ref)
	if err != nil {
		return fmt.Errorf("failed to set attachment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	const query = `SELECT COUNT(*) FROM expenses WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
