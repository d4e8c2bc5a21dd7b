package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/andresuchdata/replenish/internal/domain"
)

// parseItems reads "product_id:reference_days[:current_stock]" values. A
// missing stock falls back to the product's stored stock.
func parseItems(values []string) ([]domain.OrderRequestItem, error) {
	items := make([]domain.OrderRequestItem, 0, len(values))
	for _, value := range values {
		parts := strings.Split(strings.TrimSpace(value), ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid item %q: want product_id:reference_days[:current_stock]", value)
		}

		productID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id in %q: %w", value, err)
		}
		days, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid reference days in %q: %w", value, err)
		}

		item := domain.OrderRequestItem{ProductID: productID, ReferenceDays: days}
		if len(parts) == 3 {
			stock, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid current stock in %q: %w", value, err)
			}
			item.CurrentStock = &stock
		}
		items = append(items, item)
	}
	return items, nil
}

func writeJSON(w io.Writer, report *domain.ReorderReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeTable(w io.Writer, report *domain.ReorderReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tCODE\tOUTCOME\tORDER QTY\tMEDIAN\tIN TRANSIT\tORDER DATE\tEXPECTED")
	for _, r := range report.Results {
		median, inTransit := "-", "-"
		if r.ReorderDiagnostics != nil {
			median = strconv.FormatFloat(r.MedianDailySales, 'f', -1, 64)
			inTransit = strconv.FormatFloat(r.InTransitStock, 'f', -1, 64)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ProductID, r.ProductCode, r.Outcome,
			strconv.FormatFloat(r.OrderQty, 'f', -1, 64),
			median, inTransit, r.OrderDate, r.ExpectedDate)
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(tw, "%d\t\tskipped: %s\t\t\t\t\t\n", s.ProductID, s.Reason)
	}
	return tw.Flush()
}
