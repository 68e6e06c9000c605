package search

import (
	"strings"
	"time"

	"github.com/cinerank/cinerank/internal/domain/expr"
	"github.com/cinerank/cinerank/internal/domain/facet"
	"github.com/cinerank/cinerank/internal/domain/movie"
	"github.com/cinerank/cinerank/internal/domain/query"
	"github.com/cinerank/cinerank/internal/domain/rank"
)

// DefaultLimit caps how many hits the engine returns per search.
const DefaultLimit = 50

// Retrieval field boosts. Title carries the most weight, the overview the
// least, fuzzy variants score the same as their exact counterpart.
const (
	titleBoost      = 1.4
	castNameBoost   = 1.15
	origTitleBoost  = 1.15
	collectionBoost = 1.1
	overviewBoost   = 1.0
	characterBoost  = 1.0
	knownCastBoost  = 1.5
)

// Compile turns a parsed query and facet selections into the full ranking
// expression: one retrieval disjunction over the text fields, five boost-band
// disjunctions, and zero or more hard term filters. Every conjunct except the
// retrieval one is boost-only, so filters and boosts never fight each other.
func Compile(q query.Query, sel facet.Selections, now time.Time) expr.Expr {
	root := expr.Conjunction{}

	if retrieval := retrievalClause(q); !retrieval.IsEmpty() {
		root = root.And(retrieval)
	}

	root = root.And(rank.ReleaseYearClauses(now))
	root = root.And(rank.RuntimeClauses())
	root = root.And(rank.PromotedClauses())
	root = root.And(rank.WeightedRatingClauses())
	root = root.And(rank.PopularityClauses())

	if genres := q.Entities(query.Genre); len(genres) > 0 {
		root = root.And(termsFilter(movie.FieldGenreName, genres))
	}
	for _, f := range selectionFilters(sel) {
		root = root.And(f)
	}

	return root
}

// retrievalClause builds the single scoring disjunction: the four text-field
// pairs plus the cast branch. A document matching any one arm is retrieved.
func retrievalClause(q query.Query) expr.Disjunction {
	words := strings.TrimSpace(q.Words())
	if words == "" {
		return expr.Disjunction{}
	}

	d := expr.Or(
		fieldPair(movie.FieldTitle, words, titleBoost),
		fieldPair(movie.FieldOriginalTitle, words, origTitleBoost),
		fieldPair(movie.FieldCollectionName, words, collectionBoost),
		fieldPair(movie.FieldOverview, words, overviewBoost),
	)
	if cast := castClause(q, words); cast != nil {
		d = d.Or(cast)
	}
	return d
}

// castClause picks the cast arm of the retrieval disjunction. Recognized
// persons switch to the adjusted-name field at a higher boost and drop the
// fuzzy fallback on characters; otherwise the raw words search both the cast
// and character fields.
func castClause(q query.Query, words string) expr.Expr {
	if q.Has(query.Person) {
		persons := q.Entities(query.Person)
		arms := make([]expr.Expr, 0, len(persons))
		for _, name := range persons {
			arms = append(arms, fieldPair(movie.FieldCastAdjustedName, name, knownCastBoost))
		}
		if len(arms) == 1 {
			return arms[0]
		}
		return expr.Or(arms...)
	}
	return expr.Or(
		fieldPair(movie.FieldCastName, words, castNameBoost),
		expr.MatchField(movie.FieldCastCharacter, words, characterBoost),
	)
}

// fieldPair is the exact-or-fuzzy match pair a text field contributes:
// both arms carry the same boost, the fuzzy one tolerates a single edit.
func fieldPair(field, text string, boost float64) expr.Disjunction {
	return expr.Or(
		expr.MatchField(field, text, boost),
		expr.FuzzyMatch(field, text, boost),
	)
}

// termsFilter builds the hard filter for one field: a bare term for a single
// value, a disjunction when any of several values may match.
func termsFilter(field string, values []string) expr.Expr {
	if len(values) == 1 {
		return expr.TermMatch(field, values[0])
	}
	children := make([]expr.Expr, 0, len(values))
	for _, v := range values {
		children = append(children, expr.TermMatch(field, v))
	}
	return expr.Or(children...)
}

// selectionFilterFields maps facet selection names to index fields, in the
// order their filters are appended. Unknown names are ignored.
var selectionFilterFields = []struct {
	name  string
	field string
}{
	{"genre", movie.FieldGenreName},
	{"collection", movie.FieldCollectionName},
	{"year", movie.FieldReleaseYear},
}

func selectionFilters(sel facet.Selections) []expr.Expr {
	var filters []expr.Expr
	for _, m := range selectionFilterFields {
		if values := sel[m.name]; len(values) > 0 {
			filters = append(filters, termsFilter(m.field, values))
		}
	}
	return filters
}

// DefaultFacets returns the facet requests attached to every search.
func DefaultFacets() []facet.Request {
	return []facet.Request{
		{Name: "genres", Field: movie.FieldGenreName, Size: 10},
	}
}
