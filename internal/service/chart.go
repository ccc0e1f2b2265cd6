package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// Chart builds numeric summaries and requests chart images from the
// external generation service.
type Chart struct {
	expenseStore model.ExpenseStore
	generator    model.ImageGenerator
	logger       *logger.Logger
}

func NewChart(expenseStore model.ExpenseStore, generator model.ImageGenerator, logger *logger.Logger) *Chart {
	return &Chart{
		expenseStore: expenseStore,
		generator:    generator,
		logger:       logger,
	}
}

// Generate summarizes the user's expenses in the requested range and asks
// the external renderer for an image of the breakdown. Only the "category"
// grouping produces a summary; other group keys yield an empty one.
func (s *Chart) Generate(ctx context.Context, params model.ChartParams) (model.Chart, error) {
	expenses, err := s.expenseStore.List(ctx, params.UserID, model.ExpenseFilter{
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	})
	if err != nil {
		return model.Chart{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	if len(expenses) == 0 {
		return model.Chart{}, model.ErrNoChartData
	}

	summary := make(map[string]float64)
	if params.GroupBy == model.GroupByCategory {
		for _, expense := range expenses {
			name := expense.CategoryName
			if name == "" {
				name = model.UncategorizedName
			}
			summary[name] += expense.Amount
		}
	}

	var total float64
	for _, amount := range summary {
		total += amount
	}

	prompt := buildChartPrompt(params, summary, total)

	s.logger.Debug("Chart service: requesting image", "user_id", params.UserID, "chart_type", params.ChartType)

	image, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return model.Chart{}, fmt.Errorf("failed to generate chart image: %w", err)
	}
	if len(image) == 0 {
		return model.Chart{}, model.ErrChartRender
	}

	return model.Chart{
		Image:       image,
		DataSummary: summary,
		TotalAmount: total,
	}, nil
}

func buildChartPrompt(params model.ChartParams, summary map[string]float64, total float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create a professional %s chart showing expense data from %s to %s.\n\n",
		params.ChartType, params.DateFrom.Format("2006-01-02"), params.DateTo.Format("2006-01-02"))
	sb.WriteString("Data to visualize:\n")

	for name, amount := range summary {
		var percentage float64
		if total != 0 {
			percentage = amount / total * 100
		}
		fmt.Fprintf(&sb, "- %s: $%.2f (%.1f%%)\n", name, amount, percentage)
	}

	fmt.Fprintf(&sb, "\nTotal: $%.2f\n\n", total)
	sb.WriteString(`Style requirements:
- Professional financial chart with clear labels
- Use modern colors (blues, greens, purples)
- Include title: "Expenses by Category"
- Show amounts and percentages
- Clean, business-style design
- High contrast for readability
`)

	return sb.String()
}
