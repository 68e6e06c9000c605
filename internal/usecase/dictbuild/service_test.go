package dictbuild

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/domain/movie"
)

func castOf(names ...string) []movie.CastMember {
	cast := make([]movie.CastMember, 0, len(names))
	for _, n := range names {
		cast = append(cast, movie.CastMember{Name: n})
	}
	return cast
}

func TestRunCountsCast(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf("Bruce Willis", "Samuel L. Jackson")},
		{ID: "m2", Cast: castOf("Bruce Willis")},
	}}}
	dict := newMockDictionary()

	svc := New(catalog, dict, zap.NewNop())
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := dict.counts["person-bruce-willis"]; got != 2 {
		t.Errorf("bruce willis count = %d, want 2", got)
	}
	if got := dict.counts["person-samuel-l.-jackson"]; got != 1 {
		t.Errorf("samuel l. jackson count = %d, want 1", got)
	}
}

func TestRunCapsCastPerMovie(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("Actor Number%d", i)
	}
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf(names...)},
	}}}
	dict := newMockDictionary()

	if err := New(catalog, dict, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(dict.counts) != maxCastPerMovie {
		t.Errorf("distinct entries = %d, want %d", len(dict.counts), maxCastPerMovie)
	}
	if _, ok := dict.counts["person-actor-number11"]; ok {
		t.Error("cast member past the cap was counted")
	}
}

func TestRunTwiceDoublesCounts(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf("Eddie Murphy")},
	}}}
	dict := newMockDictionary()
	svc := New(catalog, dict, zap.NewNop())

	for i := 0; i < 2; i++ {
		if err := svc.Run(context.Background()); err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
	}

	if got := dict.counts["person-eddie-murphy"]; got != 2 {
		t.Errorf("count after two runs = %d, want 2", got)
	}
}

func TestRunPagesUntilShortPage(t *testing.T) {
	full := make([]movie.Movie, DefaultPageSize)
	for i := range full {
		full[i] = movie.Movie{ID: fmt.Sprintf("m%d", i)}
	}
	catalog := &mockCatalog{pages: [][]movie.Movie{
		full,
		full,
		{{ID: "last"}},
	}}
	dict := newMockDictionary()

	if err := New(catalog, dict, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(catalog.calls) != 3 {
		t.Fatalf("pages fetched = %d, want 3", len(catalog.calls))
	}
	for i, page := range catalog.calls {
		if page != i {
			t.Errorf("call %d fetched page %d", i, page)
		}
	}
}

func TestRunSkipsEmptyNames(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf("", "Jet Li")},
	}}}
	dict := newMockDictionary()

	if err := New(catalog, dict, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(dict.counts) != 1 {
		t.Errorf("distinct entries = %d, want 1", len(dict.counts))
	}
}

func TestRunRetriesTransientUpserts(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf("Jet Li")},
	}}}
	dict := newMockDictionary()
	dict.err = errors.New("connection reset")
	dict.failures["person-jet-li"] = 2

	if err := New(catalog, dict, zap.NewNop()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := dict.counts["person-jet-li"]; got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
	if dict.calls != 3 {
		t.Errorf("Incr calls = %d, want 3", dict.calls)
	}
}

func TestRunReportsFailedPage(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{{
		{ID: "m1", Cast: castOf("Jet Li")},
	}}}
	dict := newMockDictionary()
	dict.err = errors.New("store down")
	dict.failures["person-jet-li"] = upsertAttempts

	err := New(catalog, dict, zap.NewNop()).Run(context.Background())
	var pe *PageError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PageError", err)
	}
	if pe.Page != 0 {
		t.Errorf("failed page = %d, want 0", pe.Page)
	}
	if !errors.Is(err, dict.err) {
		t.Error("PageError does not wrap the store error")
	}
}

func TestRunFromResumesAtPage(t *testing.T) {
	full := make([]movie.Movie, DefaultPageSize)
	for i := range full {
		full[i] = movie.Movie{ID: fmt.Sprintf("m%d", i)}
	}
	catalog := &mockCatalog{pages: [][]movie.Movie{full, full, {}}}
	dict := newMockDictionary()

	if err := New(catalog, dict, zap.NewNop()).RunFrom(context.Background(), 1); err != nil {
		t.Fatalf("RunFrom: %v", err)
	}
	if len(catalog.calls) == 0 || catalog.calls[0] != 1 {
		t.Errorf("first page fetched = %v, want to start at 1", catalog.calls)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := &mockCatalog{pages: [][]movie.Movie{{{ID: "m1"}}}}
	err := New(catalog, newMockDictionary(), zap.NewNop()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(catalog.calls) != 0 {
		t.Error("catalog was queried after cancellation")
	}
}

func TestWithPageSize(t *testing.T) {
	catalog := &mockCatalog{pages: [][]movie.Movie{
		{{ID: "a"}, {ID: "b"}},
		{{ID: "c"}},
	}}
	dict := newMockDictionary()

	err := New(catalog, dict, zap.NewNop()).WithPageSize(2).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(catalog.calls) != 2 {
		t.Errorf("pages fetched = %d, want 2", len(catalog.calls))
	}
}
