package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

type fakeStore struct {
	mu      sync.Mutex
	records []domain.ProjectRecord
	err     error
	queries []domain.QueryDescriptor
}

func (s *fakeStore) Find(_ context.Context, q domain.QueryDescriptor) ([]domain.ProjectRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type fakeFields struct {
	values map[string]json.RawMessage
	fail   map[string]bool
	calls  []string
}

func fieldKey(id int64, key string) string { return fmt.Sprintf("%d/%s", id, key) }

func (f *fakeFields) ReadField(_ context.Context, id int64, key string) (json.RawMessage, error) {
	k := fieldKey(id, key)
	f.calls = append(f.calls, k)
	if f.fail[k] {
		return nil, fmt.Errorf("field backend down")
	}
	return f.values[k], nil
}

type fakeTerms struct {
	terms map[string][]domain.TermDescriptor
	fail  map[string]bool
}

func (f *fakeTerms) ReadTerms(_ context.Context, id int64, taxonomy string) ([]domain.TermDescriptor, error) {
	k := fieldKey(id, taxonomy)
	if f.fail[k] {
		return nil, fmt.Errorf("term lookup failed")
	}
	return f.terms[k], nil
}

type fakePermalinks struct {
	fail map[int64]bool
}

func (f *fakePermalinks) Resolve(_ context.Context, id int64) (string, error) {
	if f.fail[id] {
		return "", fmt.Errorf("no permalink")
	}
	return fmt.Sprintf("https://example.com/?p=%d", id), nil
}

func strPtr(s string) *string { return &s }
