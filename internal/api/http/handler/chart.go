package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// ChartService builds expense summaries and renders chart images.
type ChartService interface {
	Generate(ctx context.Context, params model.ChartParams) (model.Chart, error)
}

// Chart handles the chart generation endpoint.
type Chart struct {
	chartService   ChartService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewChart creates a new Chart handler.
func NewChart(chartService ChartService, contextManager model.ContextManager, logger *logger.Logger) *Chart {
	return &Chart{
		chartService:   chartService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type generateChartRequest struct {
	ChartType string `json:"chart_type"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	GroupBy   string `json:"group_by"`
}

type generateChartResponse struct {
	ChartImage  string             `json:"chart_image"`
	DataSummary map[string]float64 `json:"data_summary"`
	TotalAmount float64            `json:"total_amount"`
}

// Generate renders a chart image for the requested range. Any unexpected
// failure is rewrapped here into a generic server error carrying the
// original message; aggregation is read-only so there is nothing to undo.
func (h *Chart) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	req, err := decodePayload[generateChartRequest](r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	dateFrom, err := parseDate(req.DateFrom)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date_from")
		return
	}
	dateTo, err := parseDate(req.DateTo)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid date_to")
		return
	}

	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = model.GroupByCategory
	}

	chart, err := h.chartService.Generate(r.Context(), model.ChartParams{
		UserID:    user.ID,
		ChartType: req.ChartType,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		GroupBy:   groupBy,
	})
	if err != nil {
		h.logger.Error("Chart handler: generation failed", "user_id", user.ID, "error", err.Error())
		switch {
		case errors.Is(err, model.ErrNoChartData), errors.Is(err, model.ErrChartRender):
			handleError(w, err)
		default:
			respondWithError(w, http.StatusInternalServerError, "Error generating chart: "+err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, generateChartResponse{
		ChartImage:  base64.StdEncoding.EncodeToString(chart.Image),
		DataSummary: chart.DataSummary,
		TotalAmount: chart.TotalAmount,
	})
}
