package estimator

import (
	"sort"
	"strconv"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/shopspring/decimal"
)

// Median returns the middle value of xs, or the mean of the two middle values
// for an even count. It returns 0 for an empty slice. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// round2 rounds the exact binary value of v to two decimal places, ties to
// even, so 2.675 (stored as 2.67499...) becomes 2.67.
func round2(v float64) float64 {
	f, _ := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 2, 64)).Float64()
	return f
}

// inTransitStock sums pending arrivals that are in transit on currentDate:
// ordered strictly before it and not expected before it. Records for another
// product id or code are ignored even if a repository returned them.
func inTransitStock(arrivals []domain.ArrivalRecord, product domain.Product, currentDate domain.Date) float64 {
	var total float64
	for _, a := range arrivals {
		if a.ProductID != product.ID || a.ProductCode != product.Code {
			continue
		}
		if a.Status != domain.ArrivalPending {
			continue
		}
		if !a.OrderDate.Before(currentDate) || a.ExpectedDate.Before(currentDate) {
			continue
		}
		total += a.Quantity
	}
	return total
}
