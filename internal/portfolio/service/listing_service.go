package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/internal/metrics"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// ListingService answers project listing requests.
type ListingService struct {
	store     ProjectStore
	projector *Projector
	log       *zap.Logger
}

// NewListingService creates a new listing service
func NewListingService(store ProjectStore, projector *Projector, log *zap.Logger) *ListingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ListingService{
		store:     store,
		projector: projector,
		log:       log,
	}
}

// List returns the published projects matching fc. A query with no matches
// yields an empty, non-nil slice.
func (s *ListingService) List(ctx context.Context, fc domain.FilterCriteria) ([]domain.ResponseItem, error) {
	start := time.Now()
	q := domain.BuildQuery(fc)

	records, err := s.store.Find(ctx, q)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.ListingFailures.WithLabelValues("canceled").Inc()
			return nil, ctxErr
		}
		metrics.ListingFailures.WithLabelValues("store").Inc()
		s.log.Error("project query failed", zap.Error(err))
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	items, err := s.projector.Project(ctx, records)
	if err != nil {
		metrics.ListingFailures.WithLabelValues("canceled").Inc()
		return nil, err
	}

	metrics.ListingResults.Observe(float64(len(items)))
	s.log.Debug("projects listed",
		zap.Int("limit", fc.Limit),
		zap.String("build_location", fc.LocationSlug),
		zap.String("construction_type", fc.TypeSlug),
		zap.Int("count", len(items)),
		zap.Duration("took", time.Since(start)),
	)
	return items, nil
}
