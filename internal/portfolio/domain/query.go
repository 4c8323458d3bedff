package domain

type PredicateKind int

const (
	PredicateField PredicateKind = iota
	PredicateTaxonomy
)

const (
	FieldPostType   = "post_type"
	FieldPostStatus = "post_status"
	FieldMenuOrder  = "menu_order"

	MatchSlug = "slug"
)

// Predicate is a single filter condition.
//
// Field predicates compare Field to Value. Taxonomy predicates require the
// record to carry a term of Taxonomy whose Field (always the slug) equals
// Value; descendants of that term match only when IncludeDescendants is set.
type Predicate struct {
	Kind               PredicateKind
	Field              string
	Taxonomy           string
	Value              string
	IncludeDescendants bool
}

type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

type Ordering struct {
	Field     string
	Direction Direction
}

// QueryDescriptor is a store-agnostic description of a project listing query.
type QueryDescriptor struct {
	Predicates []Predicate
	Order      Ordering
	Limit      int
	Offset     int
}

// BuildQuery turns criteria into a descriptor. Predicates are always emitted
// in the order post type, status, location, construction type.
func BuildQuery(fc FilterCriteria) QueryDescriptor {
	preds := make([]Predicate, 0, 4)
	preds = append(preds,
		Predicate{Kind: PredicateField, Field: FieldPostType, Value: PostTypeProject},
		Predicate{Kind: PredicateField, Field: FieldPostStatus, Value: StatusPublished},
	)

	if fc.LocationSlug != "" {
		preds = append(preds, taxonomyPredicate(TaxonomyLocation, fc.LocationSlug))
	}
	if fc.TypeSlug != "" {
		preds = append(preds, taxonomyPredicate(TaxonomyBuildType, fc.TypeSlug))
	}

	return QueryDescriptor{
		Predicates: preds,
		Order:      Ordering{Field: FieldMenuOrder, Direction: Ascending},
		Limit:      fc.Limit,
		Offset:     0,
	}
}

func taxonomyPredicate(taxonomy, slug string) Predicate {
	return Predicate{
		Kind:               PredicateTaxonomy,
		Field:              MatchSlug,
		Taxonomy:           taxonomy,
		Value:              slug,
		IncludeDescendants: false,
	}
}

// FieldPredicates returns the plain column predicates in order.
func (q QueryDescriptor) FieldPredicates() []Predicate {
	return q.filter(PredicateField)
}

// TaxonomyPredicates returns the taxonomy intersection predicates, or nil
// when there are none. Stores must skip the taxonomy clause entirely on nil.
func (q QueryDescriptor) TaxonomyPredicates() []Predicate {
	return q.filter(PredicateTaxonomy)
}

// Unlimited reports whether the descriptor has no row limit.
func (q QueryDescriptor) Unlimited() bool {
	return q.Limit == Unlimited
}

func (q QueryDescriptor) filter(kind PredicateKind) []Predicate {
	var out []Predicate
	for _, p := range q.Predicates {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
