package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GroupByCategory is the only grouping the summary builder implements.
// Other values are accepted and produce an empty summary.
const GroupByCategory = "category"

// ChartParams describes a chart-generation request.
type ChartParams struct {
	UserID    uuid.UUID
	ChartType string
	DateFrom  time.Time
	DateTo    time.Time
	GroupBy   string
}

// Chart is a rendered chart image with the numbers it visualizes.
type Chart struct {
	Image       []byte
	DataSummary map[string]float64
	TotalAmount float64
}

// ImageGenerator renders an image from a natural-language prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
