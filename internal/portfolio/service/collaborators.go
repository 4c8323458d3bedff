package service

import (
	"context"
	"encoding/json"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// ProjectStore runs a listing query against the backing store.
type ProjectStore interface {
	Find(ctx context.Context, q domain.QueryDescriptor) ([]domain.ProjectRecord, error)
}

// FieldReader returns the raw JSON value of a custom field, or nil when the
// record has no value for key.
type FieldReader interface {
	ReadField(ctx context.Context, recordID int64, key string) (json.RawMessage, error)
}

// TermReader returns the terms of taxonomy assigned to a record, or nil when
// none are assigned.
type TermReader interface {
	ReadTerms(ctx context.Context, recordID int64, taxonomy string) ([]domain.TermDescriptor, error)
}

// PermalinkResolver returns the public URL of a record.
type PermalinkResolver interface {
	Resolve(ctx context.Context, recordID int64) (string, error)
}
