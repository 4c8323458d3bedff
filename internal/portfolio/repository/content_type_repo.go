package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/registration"
)

const (
	kindPostType   = "post_type"
	kindFieldGroup = "field_group"
)

// ContentTypeRepository stores content type and field group definitions.
// Rows are keyed by (kind, key), so registering again replaces the previous
// definition.
type ContentTypeRepository struct {
	db *sql.DB
}

func NewContentTypeRepository(db *sql.DB) *ContentTypeRepository {
	return &ContentTypeRepository{db: db}
}

func (r *ContentTypeRepository) RegisterPostType(ctx context.Context, def registration.PostTypeDefinition) error {
	return r.upsert(ctx, kindPostType, def.Key, def)
}

func (r *ContentTypeRepository) RegisterFieldGroup(ctx context.Context, def registration.FieldGroupDefinition) error {
	return r.upsert(ctx, kindFieldGroup, def.Key, def)
}

func (r *ContentTypeRepository) upsert(ctx context.Context, kind, key string, def any) error {
	payload, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %s: %w", kind, key, err)
	}

	const q = `
INSERT INTO content_definitions (kind, key, definition)
VALUES ($1, $2, $3)
ON CONFLICT (kind, key) DO UPDATE SET
	definition = EXCLUDED.definition,
	updated_at = NOW();
`
	if _, err := r.db.ExecContext(ctx, q, kind, key, payload); err != nil {
		return storeError("register "+kind, err)
	}
	return nil
}
