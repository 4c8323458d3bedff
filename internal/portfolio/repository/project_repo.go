package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// ProjectRepository runs listing queries against the projects table.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var columns = map[string]string{
	domain.FieldPostType:   "p.post_type",
	domain.FieldPostStatus: "p.post_status",
	domain.FieldMenuOrder:  "p.menu_order",
}

// Find returns the records matching q in the requested order.
func (r *ProjectRepository) Find(ctx context.Context, q domain.QueryDescriptor) ([]domain.ProjectRecord, error) {
	query, args, err := buildFindQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError("find projects", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectRecord, 0, 16)
	for rows.Next() {
		var (
			rec         domain.ProjectRecord
			title, slug sql.NullString
		)
		if err := rows.Scan(&rec.ID, &title, &slug); err != nil {
			return nil, storeError("scan project", err)
		}
		rec.Title = nullString(title)
		rec.Slug = nullString(slug)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate projects", err)
	}
	return out, nil
}

func buildFindQuery(q domain.QueryDescriptor) (string, []any, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, p := range q.FieldPredicates() {
		col, ok := columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported predicate field %q", p.Field)
		}
		where = append(where, col+" = "+arg(p.Value))
	}

	// No facets means no taxonomy clause at all.
	for _, p := range q.TaxonomyPredicates() {
		if p.Field != domain.MatchSlug {
			return "", nil, fmt.Errorf("unsupported taxonomy match field %q", p.Field)
		}
		where = append(where, taxonomyClause(p, arg(p.Taxonomy), arg(p.Value)))
	}

	orderCol, ok := columns[q.Order.Field]
	if !ok {
		return "", nil, fmt.Errorf("unsupported order field %q", q.Order.Field)
	}
	dir := domain.Ascending
	if q.Order.Direction == domain.Descending {
		dir = domain.Descending
	}

	var b strings.Builder
	b.WriteString("SELECT p.id, p.title, p.slug\nFROM projects p")
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, "\n  AND "))
	}
	fmt.Fprintf(&b, "\nORDER BY %s %s, p.id ASC", orderCol, dir)
	if !q.Unlimited() {
		b.WriteString("\nLIMIT " + arg(q.Limit))
	}
	b.WriteString("\nOFFSET " + arg(q.Offset))

	return b.String(), args, nil
}

func taxonomyClause(p domain.Predicate, taxonomyArg, slugArg string) string {
	if !p.IncludeDescendants {
		return fmt.Sprintf(`EXISTS (
    SELECT 1 FROM project_terms pt
    JOIN terms t ON t.id = pt.term_id
    WHERE pt.project_id = p.id AND t.taxonomy = %s AND t.slug = %s)`, taxonomyArg, slugArg)
	}
	return fmt.Sprintf(`EXISTS (
    WITH RECURSIVE tree AS (
      SELECT id FROM terms WHERE taxonomy = %s AND slug = %s
      UNION
      SELECT c.id FROM terms c JOIN tree ON c.parent_id = tree.id)
    SELECT 1 FROM project_terms pt
    WHERE pt.project_id = p.id AND pt.term_id IN (SELECT id FROM tree))`, taxonomyArg, slugArg)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
