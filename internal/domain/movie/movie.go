// Package movie defines the catalog record and the index field names the
// ranking pipeline scores against.
package movie

// CastMember is a single cast credit on a movie.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Genre is a single genre assignment.
type Genre struct {
	Name string `json:"name"`
}

// Collection is the franchise a movie belongs to, if any.
type Collection struct {
	Name string `json:"name"`
}

// Movie is a catalog record as persisted and as indexed by the engine.
type Movie struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	OriginalTitle  string       `json:"original_title"`
	Overview       string       `json:"overview"`
	Genres         []Genre      `json:"genres,omitempty"`
	Collection     *Collection  `json:"collection,omitempty"`
	Cast           []CastMember `json:"cast,omitempty"`
	Runtime        int          `json:"runtime"`
	ReleaseYear    int          `json:"release_year"`
	Popularity     float64      `json:"popularity"`
	WeightedRating float64      `json:"weighted_rating"`
	Promoted       bool         `json:"promoted"`
}
