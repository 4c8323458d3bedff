package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Unlimited is the limit value meaning "return every match".
const Unlimited = -1

// FilterCriteria is the validated form of a listing request.
type FilterCriteria struct {
	Limit        int
	LocationSlug string
	TypeSlug     string
}

// ParseFilterCriteria validates raw query parameters. An empty limit means
// unlimited; anything else must be an integer >= -1. Facet slugs are opaque
// and an empty slug disables that facet.
func ParseFilterCriteria(limit, location, constructionType string) (FilterCriteria, error) {
	fc := FilterCriteria{
		Limit:        Unlimited,
		LocationSlug: strings.TrimSpace(location),
		TypeSlug:     strings.TrimSpace(constructionType),
	}

	raw := strings.TrimSpace(limit)
	if raw == "" {
		return fc, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return FilterCriteria{}, fmt.Errorf("%w: limit must be an integer, got %q", ErrInvalidParameter, limit)
	}
	if n < Unlimited {
		return FilterCriteria{}, fmt.Errorf("%w: limit must be -1 or greater, got %d", ErrInvalidParameter, n)
	}

	fc.Limit = n
	return fc, nil
}

// Unlimited reports whether the criteria ask for every match.
func (f FilterCriteria) Unlimited() bool {
	return f.Limit == Unlimited
}
