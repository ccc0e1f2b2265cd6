package handler

import (
	"fmt"
	"time"

	"github.com/gastor/gastor-server/internal/model"
)

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type categoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID string `json:"user_id"`
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:     category.ID.String(),
		Name:   category.Name,
		Color:  category.Color,
		UserID: category.UserID.String(),
	}
}

type expenseResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	AttachmentRef string  `json:"attachment_ref,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func toExpenseResponse(expense model.Expense) expenseResponse {
	return expenseResponse{
		ID:            expense.ID.String(),
		UserID:        expense.UserID.String(),
		Amount:        expense.Amount,
		CategoryID:    expense.CategoryID.String(),
		CategoryName:  expense.CategoryName,
		Description:   expense.Description,
		Date:          expense.Date.UTC().Format(time.RFC3339),
		AttachmentRef: expense.AttachmentRef,
		CreatedAt:     expense.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toExpenseResponses(expenses []model.Expense) []expenseResponse {
	out := make([]expenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, toExpenseResponse(expense))
	}
	return out
}

// parseDate accepts RFC3339 timestamps and bare dates, normalized to UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("value %q could not be parsed as date", s)
}
