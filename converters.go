package cinerank

import (
	"sort"
	"strings"

	"github.com/cinerank/cinerank/internal/domain/hit"
	"github.com/cinerank/cinerank/internal/domain/movie"
	searchuc "github.com/cinerank/cinerank/internal/usecase/search"
)

func toInternalMovie(m Movie) movie.Movie {
	genres := make([]movie.Genre, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, movie.Genre{Name: g})
	}
	cast := make([]movie.CastMember, 0, len(m.Cast))
	for _, c := range m.Cast {
		cast = append(cast, movie.CastMember{Name: c.Name, Character: c.Character})
	}
	out := movie.Movie{
		ID:             m.ID,
		Title:          m.Title,
		OriginalTitle:  m.OriginalTitle,
		Overview:       m.Overview,
		Genres:         genres,
		Cast:           cast,
		Runtime:        m.Runtime,
		ReleaseYear:    m.ReleaseYear,
		Popularity:     m.Popularity,
		WeightedRating: m.WeightedRating,
		Promoted:       m.Promoted,
	}
	if m.Collection != "" {
		out.Collection = &movie.Collection{Name: m.Collection}
	}
	return out
}

func fromInternalMovie(m movie.Movie) Movie {
	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	cast := make([]CastMember, 0, len(m.Cast))
	for _, c := range m.Cast {
		cast = append(cast, CastMember{Name: c.Name, Character: c.Character})
	}
	out := Movie{
		ID:             m.ID,
		Title:          m.Title,
		OriginalTitle:  m.OriginalTitle,
		Overview:       m.Overview,
		Genres:         genres,
		Cast:           cast,
		Runtime:        m.Runtime,
		ReleaseYear:    m.ReleaseYear,
		Popularity:     m.Popularity,
		WeightedRating: m.WeightedRating,
		Promoted:       m.Promoted,
	}
	if m.Collection != nil {
		out.Collection = m.Collection.Name
	}
	return out
}

func fromSearchResult(res searchuc.Result) SearchResult {
	items := make([]RankedMovie, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, RankedMovie{
			Movie:       fromInternalMovie(it.Movie),
			Rank:        it.Rank,
			Score:       it.Score,
			Explanation: it.Explanation,
		})
	}
	return SearchResult{Items: items, Facets: fromFacets(res.Facets)}
}

// packFilters encodes facet selections into the packed filter string the
// search service parses ("genre=action,drama::year=2020"). Keys are sorted
// for a deterministic encoding.
func packFilters(filters map[string][]string) string {
	if len(filters) == 0 {
		return ""
	}
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]string, 0, len(names))
	for _, name := range names {
		if len(filters[name]) == 0 {
			continue
		}
		groups = append(groups, name+"="+strings.Join(filters[name], ","))
	}
	return strings.Join(groups, "::")
}

func fromFacets(facets []hit.Facet) []Facet {
	if len(facets) == 0 {
		return nil
	}
	out := make([]Facet, 0, len(facets))
	for _, f := range facets {
		buckets := make([]FacetBucket, 0, len(f.Buckets))
		for _, b := range f.Buckets {
			buckets = append(buckets, FacetBucket{Term: b.Term, Count: int64(b.Count)})
		}
		out = append(out, Facet{Name: f.Name, Buckets: buckets})
	}
	return out
}
