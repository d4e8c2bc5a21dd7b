package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Outcome classifies a reorder recommendation.
type Outcome string

const (
	OutcomeInsufficientHistory Outcome = "insufficient_history"
	OutcomeNoReplenishment     Outcome = "no_replenishment"
	OutcomeReplenish           Outcome = "replenish"
)

// OrderRequestItem asks for a recommendation for one product.
//
// CurrentStock falls back to the product's stored stock when absent.
// InTransitStock is the caller's own figure; it is informational only, the
// estimator derives in-transit stock from pending arrivals.
type OrderRequestItem struct {
	ProductID      int64    `json:"product_id"`
	CurrentStock   *float64 `json:"current_stock,omitempty"`
	InTransitStock *float64 `json:"in_transit_stock,omitempty"`
	ReferenceDays  int      `json:"reference_days"`
}

// OrderRequest is one estimation batch. OrderDate is an instant; it is
// mapped to a business calendar day by the estimator.
type OrderRequest struct {
	OrderDate time.Time          `json:"order_date"`
	Items     []OrderRequestItem `json:"items"`
}

// Validate checks the request shape. Errors wrap ErrInvalidRequest.
func (r OrderRequest) Validate() error {
	if r.OrderDate.IsZero() {
		return fmt.Errorf("%w: order_date is required", ErrInvalidRequest)
	}
	for i, item := range r.Items {
		if item.ReferenceDays < 1 {
			return fmt.Errorf("%w: item %d (product %d): reference_days must be >= 1, got %d",
				ErrInvalidRequest, i, item.ProductID, item.ReferenceDays)
		}
	}
	return nil
}

var orderTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseOrderTimestamp parses an order timestamp as a UTC wall-clock reading.
// An explicit offset is dropped, not applied: "2024-03-09T23:00:00+08:00"
// is 23:00 UTC.
func ParseOrderTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range orderTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised order_date %q", ErrInvalidRequest, s)
}

// ProductSnapshot carries the descriptive product fields through to the result.
type ProductSnapshot struct {
	Specification string `json:"specification"`
	Unit          string `json:"unit"`
	Description   string `json:"description"`
}

// SalesPoint is one observed selling day. It encodes as a [date, quantity] pair.
type SalesPoint struct {
	Date     Date
	Quantity float64
}

func (p SalesPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Date.String(), p.Quantity})
}

func (p *SalesPoint) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("sales point: %w", err)
	}
	if err := json.Unmarshal(pair[0], &p.Date); err != nil {
		return fmt.Errorf("sales point date: %w", err)
	}
	if err := json.Unmarshal(pair[1], &p.Quantity); err != nil {
		return fmt.Errorf("sales point quantity: %w", err)
	}
	return nil
}

// ReorderDiagnostics are the figures behind a numeric recommendation. They are
// absent when the history window held no sales.
type ReorderDiagnostics struct {
	EstimatedSales   float64      `json:"estimated_sales"`
	MedianDailySales float64      `json:"median_daily_sales"`
	SalesData        []SalesPoint `json:"sales_data"`
	ReferenceDays    int          `json:"reference_days"`
	CurrentStock     float64      `json:"current_stock"`
	InTransitStock   float64      `json:"in_transit_stock"`
}

type ReorderResult struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductCode  string          `json:"product_code"`
	Product      ProductSnapshot `json:"product"`
	Outcome      Outcome         `json:"outcome"`
	Message      string          `json:"message"`
	OrderQty     float64         `json:"order_quantity"`
	ExpectedDate Date            `json:"expected_date"`
	OrderDate    Date            `json:"order_date"`
	LeadTimeDays int             `json:"lead_time_days"`

	*ReorderDiagnostics
}

// SkippedItem records a request item that produced no result.
type SkippedItem struct {
	Index     int    `json:"index"`
	ProductID int64  `json:"product_id"`
	Reason    string `json:"reason"`
}

// ReorderReport is the outcome of one batch. Results keep request order and
// omit skipped items.
type ReorderReport struct {
	Results []ReorderResult `json:"results"`
	Skipped []SkippedItem   `json:"skipped"`
}
