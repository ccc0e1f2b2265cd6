package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gastor/gastor-server/internal/logger"
	"github.com/gastor/gastor-server/internal/model"
)

// StatsService computes dashboard aggregations.
type StatsService interface {
	Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (model.DashboardStats, error)
}

// Dashboard handles the dashboard stats endpoint.
type Dashboard struct {
	statsService   StatsService
	contextManager model.ContextManager
	logger         *logger.Logger
	now            func() time.Time
}

// NewDashboard creates a new Dashboard handler.
func NewDashboard(statsService StatsService, contextManager model.ContextManager, logger *logger.Logger) *Dashboard {
	return &Dashboard{
		statsService:   statsService,
		contextManager: contextManager,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Stats returns this-month totals, category totals, the trailing six month
// series and the all-time count.
func (h *Dashboard) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not found")
		return
	}

	stats, err := h.statsService.Dashboard(r.Context(), user.ID, h.now())
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
