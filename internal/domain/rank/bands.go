// Package rank holds the boost-band library: fixed tables of numeric ranges
// with multiplicative scoring weights. The bands never filter anything, they
// only shift ranking, so each field's clause list is an unconditional
// disjunction every document falls into at most once.
package rank

import (
	"time"

	"github.com/cinerank/cinerank/internal/domain/expr"
	"github.com/cinerank/cinerank/internal/domain/movie"
)

// Band is a numeric range paired with the boost applied inside it. Min and
// Max are inclusive. A value outside every band of a field simply matches no
// band clause, which the engine scores as a neutral weight of 1.0.
type Band struct {
	Min   float64
	Max   float64
	Boost float64
}

// Promotion boosts.
const (
	PromotedBoost    = 1.5
	NotPromotedBoost = 1.0
)

// ReleaseYearBands returns the recency bands relative to the given time.
// Recent releases get up to a 35% boost, back-catalog a 15% penalty.
func ReleaseYearBands(now time.Time) []Band {
	year := float64(now.Year())
	return []Band{
		{Min: year - 4, Max: year, Boost: 1.35},
		{Min: year - 10, Max: year - 5, Boost: 1.15},
		{Min: year - 15, Max: year - 9, Boost: 1.00},
		{Min: year - 25, Max: year - 16, Boost: 0.92},
		{Min: 0, Max: year - 25, Boost: 0.85},
	}
}

// RuntimeBands returns the runtime bands in minutes. Feature-length and
// longer material ranks above shorts.
func RuntimeBands() []Band {
	return []Band{
		{Min: 360, Max: 5000, Boost: 1.25},
		{Min: 100, Max: 359, Boost: 1.17},
		{Min: 40, Max: 99, Boost: 0.90},
		{Min: 0, Max: 39, Boost: 0.75},
	}
}

// PopularityBands returns the popularity-score bands.
func PopularityBands() []Band {
	return []Band{
		{Min: 40, Max: 1000, Boost: 1.25},
		{Min: 30, Max: 39.9999, Boost: 1.20},
		{Min: 10, Max: 29.9999, Boost: 1.10},
		{Min: 4, Max: 9.9999, Boost: 0.90},
		{Min: 0, Max: 3.9999, Boost: 0.80},
	}
}

// WeightedRatingBands returns the vote-weighted rating bands on a 0-10 scale.
func WeightedRatingBands() []Band {
	return []Band{
		{Min: 7, Max: 10, Boost: 1.25},
		{Min: 5, Max: 6.9999, Boost: 1.10},
		{Min: 3, Max: 4.999, Boost: 1.00},
		{Min: 0, Max: 2.999, Boost: 0.75},
	}
}

// Clauses turns a band table into the range disjunction for a field.
func Clauses(field string, bands []Band) expr.Disjunction {
	children := make([]expr.Expr, 0, len(bands))
	for _, b := range bands {
		children = append(children, expr.Range(field, b.Min, b.Max, b.Boost))
	}
	return expr.Disjunction{Children: children}
}

// ReleaseYearClauses returns the recency boost disjunction.
func ReleaseYearClauses(now time.Time) expr.Disjunction {
	return Clauses(movie.FieldReleaseYear, ReleaseYearBands(now))
}

// RuntimeClauses returns the runtime boost disjunction.
func RuntimeClauses() expr.Disjunction {
	return Clauses(movie.FieldRuntime, RuntimeBands())
}

// PopularityClauses returns the popularity boost disjunction.
func PopularityClauses() expr.Disjunction {
	return Clauses(movie.FieldPopularity, PopularityBands())
}

// WeightedRatingClauses returns the rating boost disjunction.
func WeightedRatingClauses() expr.Disjunction {
	return Clauses(movie.FieldWeightedRating, WeightedRatingBands())
}

// PromotedClauses returns the promotion boost pair: promoted titles score
// 1.5x, everything else stays neutral so the clause never filters.
func PromotedClauses() expr.Disjunction {
	return expr.Or(
		expr.Bool(movie.FieldPromoted, true, PromotedBoost),
		expr.Bool(movie.FieldPromoted, false, NotPromotedBoost),
	)
}

// Find returns the first band containing v, table order. The second return is
// false when v falls outside every band (scored neutral by the engine).
func Find(bands []Band, v float64) (Band, bool) {
	for _, b := range bands {
		if v >= b.Min && v <= b.Max {
			return b, true
		}
	}
	return Band{}, false
}
