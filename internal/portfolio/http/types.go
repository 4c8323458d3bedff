package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// Lister is the listing use case the handler depends on.
type Lister interface {
	List(ctx context.Context, fc domain.FilterCriteria) ([]domain.ResponseItem, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc Lister
	log *zap.Logger
}

func New(svc Lister, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}
