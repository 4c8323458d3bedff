package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kerigansolutions/kma-portfolio/internal/metrics"
	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// Projector shapes store records into response items.
type Projector struct {
	cfg        domain.ContentTypeConfig
	fields     FieldReader
	terms      TermReader
	permalinks PermalinkResolver
	log        *zap.Logger
}

func NewProjector(cfg domain.ContentTypeConfig, fields FieldReader, terms TermReader, permalinks PermalinkResolver, log *zap.Logger) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projector{
		cfg:        cfg,
		fields:     fields,
		terms:      terms,
		permalinks: permalinks,
		log:        log,
	}
}

// Project maps records to response items in input order. A failing lookup
// nulls only the affected field. The only error returned is the context's,
// in which case no items are returned.
func (p *Projector) Project(ctx context.Context, records []domain.ProjectRecord) ([]domain.ResponseItem, error) {
	items := make([]domain.ResponseItem, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, p.projectOne(ctx, rec))
	}
	return items, nil
}

func (p *Projector) projectOne(ctx context.Context, rec domain.ProjectRecord) domain.ResponseItem {
	item := domain.ResponseItem{
		ID:             rec.ID,
		Name:           rec.Title,
		Slug:           rec.Slug,
		Photo:          p.field(ctx, rec.ID, domain.FieldImage),
		GalleryEnabled: p.cfg.GalleryEnabled(),
	}

	if item.GalleryEnabled {
		item.Gallery = p.field(ctx, rec.ID, domain.FieldGallery)
	}

	if link, err := p.permalinks.Resolve(ctx, rec.ID); err != nil {
		p.fieldFailed(rec.ID, "link", err)
	} else {
		item.Link = &link
	}

	item.BuildLocation = p.termList(ctx, rec.ID, domain.TaxonomyLocation)
	item.ConstructionType = p.termList(ctx, rec.ID, domain.TaxonomyBuildType)

	return item
}

func (p *Projector) field(ctx context.Context, id int64, key string) json.RawMessage {
	v, err := p.fields.ReadField(ctx, id, key)
	if err != nil {
		p.fieldFailed(id, key, err)
		return nil
	}
	return v
}

func (p *Projector) termList(ctx context.Context, id int64, taxonomy string) []domain.TermDescriptor {
	terms, err := p.terms.ReadTerms(ctx, id, taxonomy)
	if err != nil {
		p.fieldFailed(id, taxonomy, err)
		return nil
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

func (p *Projector) fieldFailed(id int64, field string, err error) {
	metrics.FieldResolutionFailures.WithLabelValues(field).Inc()
	p.log.Warn("field resolution failed",
		zap.Int64("project_id", id),
		zap.String("field", field),
		zap.Error(err),
	)
}
