package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Stats computes dashboard aggregations over a user's expenses.
type Stats struct {
	expenseStore model.ExpenseStore
	logger       *logger.Logger
}

func NewStats(expenseStore model.ExpenseStore, logger *logger.Logger) *Stats {
	return &Stats{
		expenseStore: expenseStore,
		logger:       logger,
	}
}

const trailingMonths = 6

type monthWindow struct {
	start time.Time
	end   time.Time
}

// trailingWindows builds the six dashboard windows, newest first. Window
// starts stride back in fixed 30-day steps from the first of the current
// month, so boundaries drift off calendar months over the series; this is
// the long-standing dashboard behavior and is kept as-is. Each window ends
// at the last second of the calendar month its start lands in.
func trailingWindows(now time.Time) []monthWindow {
	startOfMonth := firstOfMonth(now)

	windows := make([]monthWindow, 0, trailingMonths)
	for i := 0; i < trailingMonths; i++ {
		start := startOfMonth.Add(-time.Duration(i) * 30 * 24 * time.Hour)
		end := firstOfMonth(start.Add(32 * 24 * time.Hour)).Add(-time.Second)
		windows = append(windows, monthWindow{start: start, end: end})
	}
	return windows
}

func firstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Dashboard aggregates this-month totals, per-category totals, the trailing
// six month windows (oldest first) and the all-time expense count. Empty
// data yields zero sums, an empty category map and six zero buckets.
func (s *Stats) Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (model.DashboardStats, error) {
	startOfMonth := firstOfMonth(now)

	monthExpenses, err := s.expenseStore.List(ctx, userID, model.ExpenseFilter{DateFrom: startOfMonth})
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to list current month expenses: %w", err)
	}

	var totalMonth float64
	categoryTotals := make(map[string]float64)
	for _, expense := range monthExpenses {
		totalMonth += expense.Amount
		name := expense.CategoryName
		if name == "" {
			name = model.UncategorizedName
		}
		categoryTotals[name] += expense.Amount
	}

	windows := trailingWindows(now)
	oldest := windows[len(windows)-1].start

	trailing, err := s.expenseStore.List(ctx, userID, model.ExpenseFilter{DateFrom: oldest})
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to list trailing expenses: %w", err)
	}

	monthlyTotals := make([]model.MonthlyTotal, 0, len(windows))
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		var total float64
		for _, expense := range trailing {
			date := expense.Date.UTC()
			if !date.Before(w.start) && !date.After(w.end) {
				total += expense.Amount
			}
		}
		monthlyTotals = append(monthlyTotals, model.MonthlyTotal{
			Month: w.start.Format("2006-01"),
			Total: total,
		})
	}

	count, err := s.expenseStore.Count(ctx, userID)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count expenses: %w", err)
	}

	return model.DashboardStats{
		TotalMonth:     totalMonth,
		CategoryTotals: categoryTotals,
		MonthlyTotals:  monthlyTotals,
		TotalExpenses:  count,
	}, nil
}
