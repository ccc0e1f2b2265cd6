package model

// UncategorizedName groups aggregated expenses whose snapshot name is empty.
const UncategorizedName = "Uncategorized"

// MonthlyTotal is one trailing-month window of the dashboard series.
type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// DashboardStats is the aggregation result for the dashboard endpoint.
type DashboardStats struct {
	TotalMonth     float64            `json:"total_month"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	MonthlyTotals  []MonthlyTotal     `json:"monthly_totals"`
	TotalExpenses  int64              `json:"total_expenses"`
}
