package cinerank

// Movie is a catalog record.
type Movie struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	OriginalTitle  string       `json:"original_title,omitempty"`
	Overview       string       `json:"overview,omitempty"`
	Genres         []string     `json:"genres,omitempty"`
	Collection     string       `json:"collection,omitempty"`
	Cast           []CastMember `json:"cast,omitempty"`
	Runtime        int          `json:"runtime,omitempty"`
	ReleaseYear    int          `json:"release_year,omitempty"`
	Popularity     float64      `json:"popularity,omitempty"`
	WeightedRating float64      `json:"weighted_rating,omitempty"`
	Promoted       bool         `json:"promoted,omitempty"`
}

// CastMember is one cast credit on a movie.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// SearchResult is one search response.
type SearchResult struct {
	Items  []RankedMovie `json:"items"`
	Facets []Facet       `json:"facets,omitempty"`
}

// RankedMovie is one ranked search result. Rank is the 1-based position.
type RankedMovie struct {
	Movie       Movie   `json:"movie"`
	Rank        int     `json:"rank"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation,omitempty"`
}

// Facet is one facet with its top term counts over the full match set.
type Facet struct {
	Name    string        `json:"name"`
	Buckets []FacetBucket `json:"buckets"`
}

// FacetBucket is one facet term with its document count.
type FacetBucket struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// PersonEntry is a person dictionary entry: the normalized name slug and the
// number of cast credits seen for it.
type PersonEntry struct {
	Slug       string `json:"slug"`
	MovieCount int64  `json:"movie_count"`
}
