// Package bleve adapts the engine-agnostic expression tree to a bleve index.
// It owns the movie document mapping and the expression translation; ranking
// semantics live upstream in the compiler.
package bleve

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/expr"
	"github.com/cinerank/cinerank/internal/domain/facet"
	"github.com/cinerank/cinerank/internal/domain/hit"
	"github.com/cinerank/cinerank/internal/domain/movie"
)

// Engine executes compiled expressions against a bleve index.
type Engine struct {
	index   bleve.Index
	explain bool
}

// Open opens the index at path, creating it with the movie mapping when it
// does not exist yet.
func Open(path string) (*Engine, error) {
	index, err := bleve.Open(path)
	if err == nil {
		return &Engine{index: index}, nil
	}
	if err != bleve.ErrorIndexPathDoesNotExist {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	index, err = bleve.New(path, newIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index %s: %w", path, err)
	}
	return &Engine{index: index}, nil
}

// NewMemOnly creates an in-memory engine, used by tests and local runs.
func NewMemOnly() (*Engine, error) {
	index, err := bleve.NewMemOnly(newIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}
	return &Engine{index: index}, nil
}

// WithExplain makes Execute attach per-hit scoring explanations.
func (e *Engine) WithExplain() *Engine {
	e.explain = true
	return e
}

// Close releases the underlying index.
func (e *Engine) Close() error {
	return e.index.Close()
}

// Index adds or replaces one movie document.
func (e *Engine) Index(m movie.Movie) error {
	if err := e.index.Index(m.ID, document(m)); err != nil {
		return fmt.Errorf("index movie %s: %w", m.ID, err)
	}
	return nil
}

// Delete removes one movie document.
func (e *Engine) Delete(id string) error {
	if err := e.index.Delete(id); err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}
	return nil
}

// document flattens a movie into the indexed shape. cast_adjusted mirrors the
// cast names so recognized-person queries hit a dedicated field.
func document(m movie.Movie) map[string]interface{} {
	// Genre names are indexed lowercased: the keyword analyzer preserves
	// case, and the genre vocabulary and its hard filters are lowercase.
	genres := make([]map[string]interface{}, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, map[string]interface{}{"name": strings.ToLower(g.Name)})
	}
	cast := make([]map[string]interface{}, 0, len(m.Cast))
	adjusted := make([]map[string]interface{}, 0, len(m.Cast))
	for _, c := range m.Cast {
		cast = append(cast, map[string]interface{}{
			"name":      c.Name,
			"character": c.Character,
		})
		adjusted = append(adjusted, map[string]interface{}{"name": c.Name})
	}

	doc := map[string]interface{}{
		"title":           m.Title,
		"original_title":  m.OriginalTitle,
		"overview":        m.Overview,
		"genres":          genres,
		"cast":            cast,
		"cast_adjusted":   adjusted,
		"release_year":    float64(m.ReleaseYear),
		"runtime":         float64(m.Runtime),
		"popularity":      m.Popularity,
		"weighted_rating": m.WeightedRating,
		"promoted":        m.Promoted,
	}
	if m.Collection != nil {
		doc["collection"] = map[string]interface{}{"name": m.Collection.Name}
	}
	return doc
}

// Execute translates the expression, runs it and returns hits in relevance
// order with the requested facet counts.
func (e *Engine) Execute(ctx context.Context, root expr.Expr, limit int, facets []facet.Request) ([]hit.Hit, []hit.Facet, error) {
	req := bleve.NewSearchRequest(translate(root))
	req.Size = limit
	req.Explain = e.explain
	for _, f := range facets {
		req.AddFacet(f.Name, bleve.NewFacetRequest(f.Field, f.Size))
	}

	res, err := e.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrEngineExecution, err)
	}
	if res.Status != nil && res.Status.Failed > 0 {
		return nil, nil, fmt.Errorf("%w: %d index shards failed", domain.ErrEngineExecution, res.Status.Failed)
	}

	hits := make([]hit.Hit, 0, len(res.Hits))
	for _, dm := range res.Hits {
		h := hit.Hit{ID: dm.ID, Score: dm.Score}
		if e.explain && dm.Expl != nil {
			h.Explanation = dm.Expl.String()
		}
		hits = append(hits, h)
	}

	// res.Facets is a map; iterate the requests to keep the caller's order.
	out := make([]hit.Facet, 0, len(facets))
	for _, f := range facets {
		fr, ok := res.Facets[f.Name]
		if !ok {
			continue
		}
		buckets := make([]hit.Bucket, 0)
		if fr.Terms != nil {
			for _, t := range fr.Terms.Terms() {
				buckets = append(buckets, hit.Bucket{Term: t.Term, Count: t.Count})
			}
		}
		out = append(out, hit.Facet{Name: f.Name, Buckets: buckets})
	}
	return hits, out, nil
}

// numericFields are indexed as numbers. A text term query never matches
// numeric index terms, so exact filters on these fields compare numerically.
var numericFields = map[string]bool{
	movie.FieldReleaseYear:    true,
	movie.FieldRuntime:        true,
	movie.FieldPopularity:     true,
	movie.FieldWeightedRating: true,
}

// numericTerm lowers an exact filter on a numeric field to the point range
// [v, v]. An unparseable value matches nothing: it is a filter, and no
// document carries a non-numeric value in these fields.
func numericTerm(t expr.Term) query.Query {
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return bleve.NewMatchNoneQuery()
	}
	inclusive := true
	q := bleve.NewNumericRangeInclusiveQuery(&v, &v, &inclusive, &inclusive)
	q.SetField(t.Field)
	return q
}

// translate lowers an expression node to the bleve query model.
func translate(e expr.Expr) query.Query {
	switch v := e.(type) {
	case expr.Match:
		q := bleve.NewMatchQuery(v.Text)
		q.SetField(v.Field)
		q.SetBoost(v.Boost)
		if v.Fuzziness > 0 {
			q.SetFuzziness(v.Fuzziness)
		}
		return q
	case expr.Term:
		if numericFields[v.Field] {
			return numericTerm(v)
		}
		q := bleve.NewTermQuery(v.Text)
		q.SetField(v.Field)
		return q
	case expr.NumericRange:
		min, max := v.Min, v.Max
		inclusive := true
		q := bleve.NewNumericRangeInclusiveQuery(&min, &max, &inclusive, &inclusive)
		q.SetField(v.Field)
		q.SetBoost(v.Boost)
		return q
	case expr.BoolField:
		q := bleve.NewBoolFieldQuery(v.Value)
		q.SetField(v.Field)
		q.SetBoost(v.Boost)
		return q
	case expr.Disjunction:
		children := make([]query.Query, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, translate(c))
		}
		return bleve.NewDisjunctionQuery(children...)
	case expr.Conjunction:
		children := make([]query.Query, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, translate(c))
		}
		return bleve.NewConjunctionQuery(children...)
	default:
		// Unreachable as long as every expr variant is handled above.
		return bleve.NewMatchNoneQuery()
	}
}
