// Package person holds the person-dictionary entry type shared between the
// offline builder and the query parser.
package person

// Entry is a person-dictionary record: a normalized name slug and the number
// of movies that name was credited on. Entries are created on first sighting
// and only ever incremented, never deleted.
type Entry struct {
	Slug       string
	MovieCount int64
}
