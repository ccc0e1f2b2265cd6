package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastor/gastor-server/internal/model"
	"github.com/gastor/gastor-server/internal/testutil"
)

type fakeStatsService struct {
	stats model.DashboardStats
	err   error

	userID uuid.UUID
	now    time.Time
}

func (f *fakeStatsService) Dashboard(_ context.Context, userID uuid.UUID, now time.Time) (model.DashboardStats, error) {
	f.userID = userID
	f.now = now
	return f.stats, f.err
}

func TestDashboard_Stats(t *testing.T) {
	user := testUser()
	fixedNow := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)

	svc := &fakeStatsService{stats: model.DashboardStats{
		TotalMonth:     30,
		CategoryTotals: map[string]float64{"Food": 30},
		MonthlyTotals: []model.MonthlyTotal{
			{Month: "2023-12", Total: 0},
			{Month: "2024-01", Total: 30},
		},
		TotalExpenses: 2,
	}}
	h := NewDashboard(svc, testCtxMgr, testutil.MakeNoopLogger())
	h.now = func() time.Time { return fixedNow }

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil), user)
	rec := doRequest(h.Stats, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, svc.userID)
	assert.Equal(t, fixedNow, svc.now)

	var resp struct {
		TotalMonth     float64             `json:"total_month"`
		CategoryTotals map[string]float64  `json:"category_totals"`
		MonthlyTotals  []model.MonthlyTotal `json:"monthly_totals"`
		TotalExpenses  int64               `json:"total_expenses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30.0, resp.TotalMonth)
	assert.Equal(t, map[string]float64{"Food": 30}, resp.CategoryTotals)
	assert.Equal(t, int64(2), resp.TotalExpenses)
	require.Len(t, resp.MonthlyTotals, 2)
	assert.Equal(t, "2024-01", resp.MonthlyTotals[1].Month)
}

func TestDashboard_Stats_Unauthenticated(t *testing.T) {
	h := NewDashboard(&fakeStatsService{}, testCtxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := doRequest(h.Stats, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
