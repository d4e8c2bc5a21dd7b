package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/estimator"
	"github.com/andresuchdata/replenish/internal/repository/memory"
	"github.com/andresuchdata/replenish/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingSales struct{}

func (failingSales) FindSales(ctx context.Context, productID int64, start, end domain.Date) ([]domain.SalesRecord, error) {
	return nil, errors.New("sales table locked")
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	products := memory.NewProductRepository()
	arrivals := memory.NewArrivalRepository()
	sales := memory.NewSalesRepository()

	p := products.SaveProduct(domain.Product{ID: 1, Code: "P-001", Name: "Rice 5kg", Unit: "bag", Description: "Imported T+7"})
	for i, qty := range []float64{10, 10, 10, 10, 100} {
		sales.UpsertSales(p.ID, domain.NewDate(2024, time.March, 5+i), qty)
	}
	arrivals.SaveArrival(domain.ArrivalRecord{
		ProductID: p.ID, ProductCode: "P-001",
		OrderDate:    domain.NewDate(2024, time.March, 8),
		ExpectedDate: domain.NewDate(2024, time.March, 11),
		Quantity:     5,
	})
	products.SaveProduct(domain.Product{ID: 2, Code: "P-002", Name: "Salt"})

	est := estimator.New(products, arrivals, sales, estimator.DefaultOptions())
	return NewRouter(&Services{ReorderService: service.NewReorderService(est)}, []string{"*"})
}

func postJSON(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCalculateOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/v1/orders/calculate", map[string]any{
		"order_date": "2024-03-09T17:30:00Z",
		"items": []map[string]any{
			{"product_id": 1, "current_stock": 10, "in_transit_stock": 999, "reference_days": 5},
			{"product_id": 404, "current_stock": 0, "reference_days": 5},
			{"product_id": 2, "current_stock": 0, "reference_days": 5},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Results []map[string]any `json:"results"`
		Skipped []map[string]any `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Results, 2)
	first := body.Results[0]
	assert.Equal(t, float64(1), first["product_id"])
	assert.Equal(t, "replenish", first["outcome"])
	assert.Equal(t, float64(35), first["order_quantity"]) // 50 - (10 + 5)
	assert.Equal(t, float64(10), first["median_daily_sales"])
	assert.Equal(t, float64(5), first["in_transit_stock"])
	assert.Equal(t, "2024-03-10", first["order_date"])
	assert.Equal(t, "2024-03-17", first["expected_date"])
	assert.Equal(t, []any{"2024-03-09", float64(100)}, first["sales_data"].([]any)[0])

	second := body.Results[1]
	assert.Equal(t, "insufficient_history", second["outcome"])
	assert.Equal(t, "2024-03-13", second["expected_date"])
	assert.NotContains(t, second, "median_daily_sales")

	require.Len(t, body.Skipped, 1)
	assert.Equal(t, float64(404), body.Skipped[0]["product_id"])
}

func TestCalculateOrderLegacyReturnsList(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/calculate-order", map[string]any{
		"order_date": "2024-03-09T17:30:00",
		"items":      []map[string]any{{"product_id": 1, "current_stock": 60, "reference_days": 5}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "no_replenishment", results[0]["outcome"])
	assert.Equal(t, float64(0), results[0]["order_quantity"])
}

func TestCalculateOrderReadsOffsetTimestampAsUTC(t *testing.T) {
	router := newTestRouter(t)

	// Read as 23:00 UTC, which is 2024-03-10 07:00 in UTC+8.
	rec := postJSON(router, "/api/calculate-order", map[string]any{
		"order_date": "2024-03-09T23:00:00+08:00",
		"items":      []map[string]any{{"product_id": 2, "reference_days": 1}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "2024-03-10", results[0]["order_date"])
}

func TestCalculateOrderBadRequests(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "missing order date", body: map[string]any{"items": []any{}}},
		{name: "unparsable order date", body: map[string]any{"order_date": "next tuesday"}},
		{name: "zero reference days", body: map[string]any{
			"order_date": "2024-03-09T17:30:00Z",
			"items":      []map[string]any{{"product_id": 1, "reference_days": 0}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, "/api/v1/orders/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCalculateOrderSkipsUnknownProductID(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(router, "/api/calculate-order", map[string]any{
		"order_date": "2024-03-09T17:30:00Z",
		"items": []map[string]any{
			{"product_id": 1, "current_stock": 60, "reference_days": 5},
			{"product_id": 0, "current_stock": 0, "reference_days": 5},
			{"current_stock": 0, "reference_days": 5},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, float64(1), results[0]["product_id"])

	rec = postJSON(router, "/api/v1/orders/calculate", map[string]any{
		"order_date": "2024-03-09T17:30:00Z",
		"items":      []map[string]any{{"product_id": 0, "reference_days": 5}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"results":[],"skipped":[{"index":0,"product_id":0,"reason":"product not found"}]}`, rec.Body.String())
}

func TestCalculateOrderRepositoryFailure(t *testing.T) {
	products := memory.NewProductRepository()
	products.SaveProduct(domain.Product{ID: 1, Code: "P-001"})
	est := estimator.New(products, memory.NewArrivalRepository(), failingSales{}, estimator.DefaultOptions())
	router := NewRouter(&Services{ReorderService: service.NewReorderService(est)}, nil)

	rec := postJSON(router, "/api/v1/orders/calculate", map[string]any{
		"order_date": "2024-03-09T17:30:00Z",
		"items":      []map[string]any{{"product_id": 1, "reference_days": 3}},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "sales table locked")
	assert.NotContains(t, rec.Body.String(), "results")
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	parsed, allowAll := normalizeAllowedOrigins([]string{"http://a.test, http://b.test", " "})
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, parsed)
	assert.False(t, allowAll)

	_, allowAll = normalizeAllowedOrigins([]string{"*"})
	assert.True(t, allowAll)
}
