package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastor/gastor-server/internal/model"
	"github.com/gastor/gastor-server/internal/testutil"
)

type fakeChartService struct {
	chart  model.Chart
	err    error
	params model.ChartParams
}

func (f *fakeChartService) Generate(_ context.Context, params model.ChartParams) (model.Chart, error) {
	f.params = params
	return f.chart, f.err
}

func TestChart_Generate(t *testing.T) {
	user := testUser()

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/charts/generate", strings.NewReader(body))
		return authedRequest(req, user)
	}

	t.Run("success", func(t *testing.T) {
		image := []byte{0x89, 0x50, 0x4e, 0x47}
		svc := &fakeChartService{chart: model.Chart{
			Image:       image,
			DataSummary: map[string]float64{"Food": 30},
			TotalAmount: 30,
		}}
		h := NewChart(svc, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"pie","date_from":"2024-01-01","date_to":"2024-01-31","group_by":"category"}`
		rec := doRequest(h.Generate, newRequest(body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, svc.params.UserID)
		assert.Equal(t, "pie", svc.params.ChartType)
		assert.Equal(t, "category", svc.params.GroupBy)

		var resp generateChartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), resp.ChartImage)
		assert.Equal(t, map[string]float64{"Food": 30}, resp.DataSummary)
		assert.Equal(t, 30.0, resp.TotalAmount)
	})

	t.Run("group_by defaults to category", func(t *testing.T) {
		svc := &fakeChartService{chart: model.Chart{Image: []byte{1}}}
		h := NewChart(svc, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"bar","date_from":"2024-01-01","date_to":"2024-01-31"}`
		rec := doRequest(h.Generate, newRequest(body))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.GroupByCategory, svc.params.GroupBy)
	})

	t.Run("no data", func(t *testing.T) {
		svc := &fakeChartService{err: model.ErrNoChartData}
		h := NewChart(svc, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"pie","date_from":"2024-01-01","date_to":"2024-01-31"}`
		rec := doRequest(h.Generate, newRequest(body))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No data found for the selected period", resp.Detail)
	})

	t.Run("render failure", func(t *testing.T) {
		svc := &fakeChartService{err: model.ErrChartRender}
		h := NewChart(svc, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"pie","date_from":"2024-01-01","date_to":"2024-01-31"}`
		rec := doRequest(h.Generate, newRequest(body))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to generate chart", resp.Detail)
	})

	t.Run("unexpected error carries message", func(t *testing.T) {
		svc := &fakeChartService{err: errors.New("upstream timeout")}
		h := NewChart(svc, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"pie","date_from":"2024-01-01","date_to":"2024-01-31"}`
		rec := doRequest(h.Generate, newRequest(body))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Error generating chart: upstream timeout", resp.Detail)
	})

	t.Run("invalid dates", func(t *testing.T) {
		h := NewChart(&fakeChartService{}, testCtxMgr, testutil.MakeNoopLogger())

		body := `{"chart_type":"pie","date_from":"January","date_to":"2024-01-31"}`
		rec := doRequest(h.Generate, newRequest(body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
