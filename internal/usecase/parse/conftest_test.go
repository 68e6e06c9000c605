package parse

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/person"
)

// mockDictionary answers lookups from a fixed slug set.
type mockDictionary struct {
	known map[string]int64
	err   error
	calls []string
}

func (m *mockDictionary) Get(_ context.Context, slug string) (person.Entry, error) {
	m.calls = append(m.calls, slug)
	if m.err != nil {
		return person.Entry{}, m.err
	}
	if count, ok := m.known[slug]; ok {
		return person.Entry{Slug: slug, MovieCount: count}, nil
	}
	return person.Entry{}, domain.ErrNotFound
}
