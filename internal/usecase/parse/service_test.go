package parse

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cinerank/cinerank/internal/domain/query"
	"github.com/cinerank/cinerank/internal/logger"
)

func newParser(dict *mockDictionary) *Service {
	return New(dict)
}

func TestParse_Genres(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two genres", "a horror comedy film", []string{"comedy", "horror"}},
		{"word boundary enforced", "horrorshow", nil},
		{"case insensitive", "best ACTION movies", []string{"action"}},
		{"multi-word genre", "classic science fiction", []string{"science fiction"}},
		{"no genres", "star wars", nil},
		{"vocabulary order", "action before comedy", []string{"comedy", "action"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newParser(&mockDictionary{}).Parse(context.Background(), tt.input)
			got := q.Entities(query.Genre)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("genres = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_SingleTokenNeverMatchesPerson(t *testing.T) {
	// Even a dictionary that knows everything cannot make one word a person.
	dict := &mockDictionary{known: map[string]int64{"person-tom": 1}}
	q := newParser(dict).Parse(context.Background(), "tom")
	if q.Has(query.Person) {
		t.Errorf("persons = %v, want none for a single token", q.Entities(query.Person))
	}
	if len(dict.calls) != 0 {
		t.Errorf("dictionary consulted %d times for a single token", len(dict.calls))
	}
}

func TestParse_PersonFromBigram(t *testing.T) {
	dict := &mockDictionary{known: map[string]int64{"person-eddie-murphy": 24}}
	q := newParser(dict).Parse(context.Background(), "fat eddie murphy")

	want := []string{"eddie murphy"}
	if got := q.Entities(query.Person); !reflect.DeepEqual(got, want) {
		t.Errorf("persons = %v, want %v", got, want)
	}
	// "fat eddie" and "eddie murphy" both get looked up.
	if len(dict.calls) != 2 {
		t.Errorf("dictionary consulted %d times, want 2", len(dict.calls))
	}
}

func TestParse_NoFalsePersons(t *testing.T) {
	q := newParser(&mockDictionary{}).Parse(context.Background(), "the lord of the rings")
	if q.Has(query.Person) {
		t.Errorf("persons = %v, want none", q.Entities(query.Person))
	}
}

func TestParse_TwoTokensYieldOneShingle(t *testing.T) {
	dict := &mockDictionary{known: map[string]int64{"person-bruce-willis": 60}}
	q := newParser(dict).Parse(context.Background(), "bruce willis")

	if len(dict.calls) != 1 {
		t.Fatalf("dictionary consulted %d times, want 1", len(dict.calls))
	}
	if got := q.Entities(query.Person); !reflect.DeepEqual(got, []string{"bruce willis"}) {
		t.Errorf("persons = %v", got)
	}
}

func TestParse_MultiplePersons(t *testing.T) {
	dict := &mockDictionary{known: map[string]int64{
		"person-bruce-willis": 60,
		"person-uma-thurman":  30,
	}}
	q := newParser(dict).Parse(context.Background(), "bruce willis uma thurman")

	want := []string{"bruce willis", "uma thurman"}
	if got := q.Entities(query.Person); !reflect.DeepEqual(got, want) {
		t.Errorf("persons = %v, want %v", got, want)
	}
}

func TestParse_DictionaryErrorIsAMiss(t *testing.T) {
	dict := &mockDictionary{err: errors.New("connection refused")}
	q := newParser(dict).Parse(context.Background(), "bruce willis movies")

	if q.Has(query.Person) {
		t.Errorf("persons = %v, want none on lookup failure", q.Entities(query.Person))
	}
	if q.Words() != "bruce willis movies" {
		t.Errorf("words = %q", q.Words())
	}
}

func TestParse_LookupFailureWarnsContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logger.ContextWith(context.Background(), zap.New(core))

	dict := &mockDictionary{err: errors.New("connection refused")}
	newParser(dict).Parse(ctx, "bruce willis")

	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["shingle"] != "bruce willis" {
		t.Errorf("warn fields = %v", entry.ContextMap())
	}
}

func TestParse_EmptyText(t *testing.T) {
	q := newParser(&mockDictionary{}).Parse(context.Background(), "")
	if q.Has(query.Genre) || q.Has(query.Person) {
		t.Error("empty text produced entities")
	}
}

func TestShingles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single token", "tom", nil},
		{"two tokens", "star wars", []string{"star wars"}},
		{"three tokens", "fat eddie murphy", []string{"fat eddie", "eddie murphy"}},
		{
			"five tokens",
			"the lord of the rings",
			[]string{"the lord", "lord of", "of the", "the rings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shingles(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("shingles(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
