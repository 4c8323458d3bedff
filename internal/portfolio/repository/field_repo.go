package repository

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// FieldRepository reads custom field values stored as jsonb rows.
type FieldRepository struct {
	db *sql.DB
}

func NewFieldRepository(db *sql.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) ReadField(ctx context.Context, recordID int64, key string) (json.RawMessage, error) {
	const q = `
SELECT value
FROM project_fields
WHERE project_id = $1 AND field_key = $2;
`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, recordID, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("read field "+key, err)
	}
	return rawValue(raw), nil
}

// rawValue normalises a stored value: missing, empty and JSON null all read
// as nil, and anything that is not valid JSON is passed through as a string.
func rawValue(raw []byte) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if !json.Valid(raw) {
		quoted, _ := json.Marshal(string(raw))
		return quoted
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
