package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PermalinkRepository builds public project URLs from the site URL and the
// stored slug. Records without a slug get the "?p=<id>" form.
type PermalinkRepository struct {
	db      *sql.DB
	siteURL string
}

func NewPermalinkRepository(db *sql.DB, siteURL string) *PermalinkRepository {
	return &PermalinkRepository{db: db, siteURL: strings.TrimRight(siteURL, "/")}
}

func (r *PermalinkRepository) Resolve(ctx context.Context, recordID int64) (string, error) {
	const q = `
SELECT post_type, slug
FROM projects
WHERE id = $1;
`
	var (
		postType string
		slug     sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, recordID).Scan(&postType, &slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("project %d not found", recordID)
		}
		return "", storeError("resolve permalink", err)
	}
	return r.format(recordID, postType, slug.String), nil
}

func (r *PermalinkRepository) format(id int64, postType, slug string) string {
	if slug == "" {
		return r.siteURL + "/?p=" + strconv.FormatInt(id, 10)
	}
	return r.siteURL + "/" + url.PathEscape(postType) + "/" + url.PathEscape(slug) + "/"
}
