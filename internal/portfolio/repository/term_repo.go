package repository

import (
	"context"
	"database/sql"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// TermRepository reads the taxonomy terms assigned to projects.
type TermRepository struct {
	db *sql.DB
}

func NewTermRepository(db *sql.DB) *TermRepository {
	return &TermRepository{db: db}
}

// ReadTerms returns the terms sorted by name, or nil when none are assigned.
func (r *TermRepository) ReadTerms(ctx context.Context, recordID int64, taxonomy string) ([]domain.TermDescriptor, error) {
	const q = `
SELECT t.id, t.name, t.slug
FROM terms t
JOIN project_terms pt ON pt.term_id = t.id
WHERE pt.project_id = $1 AND t.taxonomy = $2
ORDER BY t.name ASC, t.id ASC;
`
	rows, err := r.db.QueryContext(ctx, q, recordID, taxonomy)
	if err != nil {
		return nil, storeError("read terms "+taxonomy, err)
	}
	defer rows.Close()

	var out []domain.TermDescriptor
	for rows.Next() {
		var t domain.TermDescriptor
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, storeError("scan term", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate terms", err)
	}
	return out, nil
}
