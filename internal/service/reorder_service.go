package service

import (
	"context"
	"time"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/rs/zerolog/log"
)

// ReorderEstimator produces a reorder report for a batch of items.
type ReorderEstimator interface {
	Estimate(ctx context.Context, req domain.OrderRequest) (*domain.ReorderReport, error)
}

type ReorderService struct {
	estimator ReorderEstimator
}

func NewReorderService(estimator ReorderEstimator) *ReorderService {
	return &ReorderService{estimator: estimator}
}

// CalculateOrder runs one estimation batch.
func (s *ReorderService) CalculateOrder(ctx context.Context, req domain.OrderRequest) (*domain.ReorderReport, error) {
	start := time.Now()

	report, err := s.estimator.Estimate(ctx, req)
	if err != nil {
		log.Error().Stack().Err(err).Int("items", len(req.Items)).Msg("reorder: batch failed")
		return nil, err
	}

	replenish := 0
	for _, r := range report.Results {
		if r.Outcome == domain.OutcomeReplenish {
			replenish++
		}
	}

	log.Info().
		Time("order_date", req.OrderDate).
		Int("items", len(req.Items)).
		Int("results", len(report.Results)).
		Int("replenish", replenish).
		Int("skipped", len(report.Skipped)).
		Dur("elapsed", time.Since(start)).
		Msg("reorder: batch calculated")

	return report, nil
}
