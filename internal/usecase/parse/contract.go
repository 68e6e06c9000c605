package parse

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain/person"
)

// Dictionary is the read capability over the person dictionary. The parser
// never writes; only the offline builder holds a write capability.
type Dictionary interface {
	Get(ctx context.Context, slug string) (person.Entry, error)
}
