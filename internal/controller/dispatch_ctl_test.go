package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch_admin/internal/api/dto"
	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/service"
	"dispatch_admin/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

// setupDispatchCtlRouter 与正式路由相同的路径，不带认证
func setupDispatchCtlRouter(t *testing.T) (*gin.Engine, testutil.Fixtures) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)

	svc := service.NewDispatchService(db, repository.NewDispatchRepository(db), zerolog.Nop())
	ctl := NewDispatchController(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/dispatches", ctl.ListDispatches)
		api.GET("/dispatch-summaries", ctl.ListDispatchSummaries)
		api.GET("/shipping-costs", ctl.ListShippingCosts)
		api.GET("/shipping-costs/:id", ctl.GetShippingCosts)
		api.GET("/costs-matrix/:dispatchId", ctl.GetCostsMatrix)
		api.DELETE("/costs-matrix/:dispatchId", ctl.PurgeCostsMatrix)
		api.GET("/payments", ctl.ListPayments)
		api.GET("/countries", ctl.ListCountries)
		api.GET("/holidays", ctl.ListHolidays)
		api.GET("/maintenance/orphaned-dispatches", ctl.ListOrphanedDispatches)
	}
	return r, fx
}

func get(r *gin.Engine, path string, params url.Values) *httptest.ResponseRecorder {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// ==================== 配送规则 ====================

func TestListDispatches(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/dispatches", url.Values{
		"filter": {"versand"},
		"sort":   {`[{"property":"position","direction":"DESC"}]`},
		"start":  {"0"},
		"limit":  {"1"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Dispatch]](t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Outlet Versand", resp.Data[0].Name)
	assert.Equal(t, int64(2), resp.Total)
}

func TestListDispatches_JSONSearchFilter(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/dispatches", url.Values{
		"filter": {`[{"property":"search","value":"express"}]`},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Dispatch]](t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Express", resp.Data[0].Name)
}

func TestListDispatches_BadParams(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	tests := []struct {
		name   string
		params url.Values
	}{
		{"invalid sort json", url.Values{"sort": {"position"}}},
		{"negative start", url.Values{"start": {"-1"}, "limit": {"10"}}},
		{"non numeric limit", url.Values{"limit": {"ten"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/api/v1/dispatches", tt.params)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestListDispatchSummaries(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/dispatch-summaries", url.Values{"limit": {"2"}})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Dispatch]](t, w)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(4), resp.Total)
}

func TestListShippingCosts(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/shipping-costs", url.Values{"filter": {"Standard"}})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Dispatch]](t, w)
	require.Len(t, resp.Data, 1)
	assert.Len(t, resp.Data[0].Countries, 2)
	require.NotNil(t, resp.Data[0].Attribute)
}

func TestGetShippingCosts(t *testing.T) {
	r, fx := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/shipping-costs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := decode[model.Dispatch](t, w)
	assert.Equal(t, fx.Standard, d.ID)
	assert.Len(t, d.Payments, 2)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/v1/shipping-costs/404", nil).Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/shipping-costs/abc", nil).Code)
}

// ==================== 运费矩阵 ====================

func TestGetCostsMatrix(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/costs-matrix/1", url.Values{"start": {"1"}, "limit": {"1"}})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.ShippingCost]](t, w)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, []float64{0, 5, 10}, []float64{resp.Data[0].From, resp.Data[1].From, resp.Data[2].From})

	w = get(r, "/api/v1/costs-matrix/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

func TestPurgeCostsMatrix(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/costs-matrix/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dispatch_id":1,"deleted":3}`, w.Body.String())

	w = get(r, "/api/v1/costs-matrix/1", nil)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/costs-matrix/0", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== 基础数据 ====================

func TestListPayments(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/payments", url.Values{
		"filter": {`[{"property":"usedIds","value":[1,3]}]`},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Payment]](t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "invoice", resp.Data[0].Name)
}

func TestListPayments_InvalidFilter(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/payments", url.Values{"filter": {"[not json"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCountries(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/countries", url.Values{
		"filter": {`[{"property":"usedIds","value":[1,2]},{"property":"onlyIds","value":[1,2,3]}]`},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Country]](t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CH", resp.Data[0].ISO)
}

func TestListHolidays(t *testing.T) {
	r, _ := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/holidays", url.Values{
		"filter": {`[{"property":"usedIds","value":[1]}]`},
		"sort":   {`[{"property":"date","direction":"DESC"}]`},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResp[model.Holiday]](t, w)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "New Year", resp.Data[0].Name)
}

// ==================== 维护 ====================

func TestListOrphanedDispatches(t *testing.T) {
	r, fx := setupDispatchCtlRouter(t)

	w := get(r, "/api/v1/maintenance/orphaned-dispatches", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.OrphanReportResp](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.WithinDuration(t, time.Now(), resp.CheckedAt, time.Minute)

	got := make([]int64, 0, len(resp.Items))
	for _, item := range resp.Items {
		got = append(got, item.ID)
	}
	assert.ElementsMatch(t, []int64{fx.Outlet, fx.Pickup}, got)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		retryAfter string
	}{
		{"not found", service.ErrDispatchNotFound, http.StatusNotFound, ""},
		{"invalid id", service.ErrInvalidDispatchID, http.StatusBadRequest, ""},
		{"serialization", fmt.Errorf("query dispatches: %w", &pgconn.PgError{Code: "40001"}), http.StatusServiceUnavailable, "1"},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, http.StatusServiceUnavailable, "1"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, ""},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
