package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePredicates() []Predicate {
	return []Predicate{
		{Kind: PredicateField, Field: FieldPostType, Value: PostTypeProject},
		{Kind: PredicateField, Field: FieldPostStatus, Value: StatusPublished},
	}
}

func TestBuildQuery_NoFacets(t *testing.T) {
	q := BuildQuery(FilterCriteria{Limit: Unlimited})

	assert.Equal(t, basePredicates(), q.Predicates)
	assert.Nil(t, q.TaxonomyPredicates())
	assert.Equal(t, Unlimited, q.Limit)
	assert.True(t, q.Unlimited())
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, Ordering{Field: FieldMenuOrder, Direction: Ascending}, q.Order)
}

func TestBuildQuery_LocationOnly(t *testing.T) {
	q := BuildQuery(FilterCriteria{Limit: 5, LocationSlug: "lakefront"})

	want := append(basePredicates(), Predicate{
		Kind:     PredicateTaxonomy,
		Field:    MatchSlug,
		Taxonomy: TaxonomyLocation,
		Value:    "lakefront",
	})
	assert.Equal(t, want, q.Predicates)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, 0, q.Offset)
}

func TestBuildQuery_TypeOnly(t *testing.T) {
	q := BuildQuery(FilterCriteria{Limit: Unlimited, TypeSlug: "remodel"})

	tax := q.TaxonomyPredicates()
	require.Len(t, tax, 1)
	assert.Equal(t, TaxonomyBuildType, tax[0].Taxonomy)
	assert.Equal(t, "remodel", tax[0].Value)
	assert.False(t, tax[0].IncludeDescendants)
}

func TestBuildQuery_LocationPrecedesType(t *testing.T) {
	q := BuildQuery(FilterCriteria{Limit: 3, LocationSlug: "mexico-beach", TypeSlug: "custom-home"})

	require.Len(t, q.Predicates, 4)
	assert.Equal(t, FieldPostType, q.Predicates[0].Field)
	assert.Equal(t, FieldPostStatus, q.Predicates[1].Field)
	assert.Equal(t, TaxonomyLocation, q.Predicates[2].Taxonomy)
	assert.Equal(t, TaxonomyBuildType, q.Predicates[3].Taxonomy)
	assert.Len(t, q.FieldPredicates(), 2)
}

func TestBuildQuery_Idempotent(t *testing.T) {
	fc := FilterCriteria{Limit: 7, LocationSlug: "port-st-joe", TypeSlug: "commercial"}
	assert.Equal(t, BuildQuery(fc), BuildQuery(fc))
}
