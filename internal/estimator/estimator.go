// Package estimator computes reorder recommendations from current stock,
// pending arrivals and recent daily sales.
//
// For each requested product the estimator takes the median of the daily
// sales observed in a trailing window that ends yesterday, projects it over
// the window length, and nets the projection against current and in-transit
// stock. It never writes; all state comes from the repositories it is given.
package estimator

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/repository"
	"github.com/andresuchdata/replenish/pkg/logger"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	msgInsufficientHistory = "insufficient sales history, set the estimate manually"
	msgNoReplenishment     = "no replenishment needed"
	msgReplenish           = "replenishment suggested"
)

type Options struct {
	Clock               Clock
	DefaultLeadTimeDays int
}

// DefaultOptions returns UTC+8 business days and a 3 day default lead time.
func DefaultOptions() Options {
	return Options{
		Clock:               NewClock(DefaultUTCOffsetHours),
		DefaultLeadTimeDays: DefaultLeadTimeDays,
	}
}

type Estimator struct {
	products repository.ProductRepository
	arrivals repository.ArrivalRepository
	sales    repository.SalesRepository
	opts     Options
	log      zerolog.Logger
}

func New(products repository.ProductRepository, arrivals repository.ArrivalRepository, sales repository.SalesRepository, opts Options) *Estimator {
	if opts.DefaultLeadTimeDays <= 0 {
		opts.DefaultLeadTimeDays = DefaultLeadTimeDays
	}
	if opts.Clock.loc == nil {
		opts.Clock = NewClock(DefaultUTCOffsetHours)
	}
	return &Estimator{
		products: products,
		arrivals: arrivals,
		sales:    sales,
		opts:     opts,
		log:      logger.Component("estimator"),
	}
}

// Estimate processes the items of req in order. Items whose product does not
// resolve are reported as skipped; any other failure aborts the whole batch
// and no results are returned.
func (e *Estimator) Estimate(ctx context.Context, req domain.OrderRequest) (*domain.ReorderReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currentDate := e.opts.Clock.BusinessDate(req.OrderDate)
	e.log.Debug().
		Time("order_date", req.OrderDate).
		Str("business_date", currentDate.String()).
		Int("items", len(req.Items)).
		Msg("estimating reorder batch")

	report := &domain.ReorderReport{
		Results: make([]domain.ReorderResult, 0, len(req.Items)),
		Skipped: make([]domain.SkippedItem, 0),
	}

	for i, item := range req.Items {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		result, err := e.estimateItem(ctx, currentDate, item)
		if stderrors.Is(err, domain.ErrProductNotFound) {
			e.log.Warn().Int64("product_id", item.ProductID).Msg("product not found, skipping item")
			report.Skipped = append(report.Skipped, domain.SkippedItem{
				Index:     i,
				ProductID: item.ProductID,
				Reason:    domain.ErrProductNotFound.Error(),
			})
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "estimate product %d", item.ProductID)
		}

		report.Results = append(report.Results, *result)
	}

	return report, nil
}

func (e *Estimator) estimateItem(ctx context.Context, currentDate domain.Date, item domain.OrderRequestItem) (*domain.ReorderResult, error) {
	product, err := e.products.FindProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	log := e.log.With().Int64("product_id", product.ID).Str("product_code", product.Code).Logger()

	arrivals, err := e.arrivals.FindPendingArrivals(ctx, product.ID, product.Code, currentDate, currentDate)
	if err != nil {
		return nil, fmt.Errorf("find pending arrivals: %w", err)
	}
	inTransit := inTransitStock(arrivals, *product, currentDate)
	log.Debug().Int("records", len(arrivals)).Float64("in_transit_stock", inTransit).Msg("in-transit stock")
	if item.InTransitStock != nil && *item.InTransitStock != inTransit {
		log.Debug().Float64("hint", *item.InTransitStock).Float64("computed", inTransit).Msg("in-transit hint differs from pending arrivals")
	}

	leadTime := ParseLeadTime(product.Description, e.opts.DefaultLeadTimeDays)
	start, end := Window(currentDate, item.ReferenceDays)
	log.Debug().
		Int("lead_time_days", leadTime).
		Str("window_start", start.String()).
		Str("window_end", end.String()).
		Msg("history window")

	sales, err := e.sales.FindSales(ctx, product.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}

	result := &domain.ReorderResult{
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductCode: product.Code,
		Product: domain.ProductSnapshot{
			Specification: product.Specification,
			Unit:          product.Unit,
			Description:   product.Description,
		},
		ExpectedDate: currentDate.AddDays(leadTime),
		OrderDate:    currentDate,
		LeadTimeDays: leadTime,
	}

	if len(sales) == 0 {
		log.Debug().Msg("no sales history in window")
		result.Outcome = domain.OutcomeInsufficientHistory
		result.Message = msgInsufficientHistory
		return result, nil
	}

	quantities := make([]float64, len(sales))
	points := make([]domain.SalesPoint, len(sales))
	for i, s := range sales {
		quantities[i] = s.Quantity
		points[i] = domain.SalesPoint{Date: s.Date, Quantity: s.Quantity}
	}

	currentStock := product.CurrentStock
	if item.CurrentStock != nil {
		currentStock = *item.CurrentStock
	}

	median := Median(quantities)
	estimated := median * float64(item.ReferenceDays)
	orderQty := estimated - (currentStock + inTransit)

	result.ReorderDiagnostics = &domain.ReorderDiagnostics{
		EstimatedSales:   round2(estimated),
		MedianDailySales: round2(median),
		SalesData:        points,
		ReferenceDays:    item.ReferenceDays,
		CurrentStock:     currentStock,
		InTransitStock:   round2(inTransit),
	}

	if orderQty <= 0 {
		result.Outcome = domain.OutcomeNoReplenishment
		result.Message = msgNoReplenishment
	} else {
		result.Outcome = domain.OutcomeReplenish
		result.Message = msgReplenish
		result.OrderQty = round2(orderQty)
	}

	log.Debug().
		Floats64("sales", quantities).
		Float64("median", median).
		Float64("estimated_sales", estimated).
		Float64("current_stock", currentStock).
		Float64("order_quantity", result.OrderQty).
		Str("outcome", string(result.Outcome)).
		Msg("reorder estimated")

	return result, nil
}
