// Package query defines the parsed representation of a free-text search query.
package query

// EntityType classifies a recognized query entity.
type EntityType string

const (
	// Genre marks a genre-vocabulary match.
	Genre EntityType = "genre"
	// Person marks a person-dictionary match.
	Person EntityType = "person"
)

// Query is a parsed search query: the raw words plus any recognized entities.
// Built once per request by the parser and immutable afterwards.
type Query struct {
	words    string
	entities map[EntityType][]string
}

// New creates a parsed query. The entities map is taken over by the Query and
// must not be mutated by the caller afterwards.
func New(words string, entities map[EntityType][]string) Query {
	return Query{words: words, entities: entities}
}

// Words returns the raw query text.
func (q Query) Words() string { return q.words }

// Entities returns the recognized entities of the given type, in the order
// they were recognized. Duplicates are retained.
func (q Query) Entities(t EntityType) []string { return q.entities[t] }

// Has reports whether at least one entity of the given type was recognized.
func (q Query) Has(t EntityType) bool { return len(q.entities[t]) > 0 }
