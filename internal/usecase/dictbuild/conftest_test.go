package dictbuild

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain/movie"
)

type mockCatalog struct {
	pages [][]movie.Movie
	calls []int
	err   error
}

func (m *mockCatalog) ListPage(_ context.Context, page, size int) ([]movie.Movie, bool, error) {
	m.calls = append(m.calls, page)
	if m.err != nil {
		return nil, false, m.err
	}
	if page >= len(m.pages) {
		return nil, true, nil
	}
	p := m.pages[page]
	return p, len(p) < size, nil
}

type mockDictionary struct {
	counts   map[string]int64
	failures map[string]int // remaining errors per slug before success
	err      error
	calls    int
}

func newMockDictionary() *mockDictionary {
	return &mockDictionary{counts: map[string]int64{}, failures: map[string]int{}}
}

func (m *mockDictionary) Incr(_ context.Context, slug string) (int64, error) {
	m.calls++
	if n := m.failures[slug]; n > 0 {
		m.failures[slug] = n - 1
		return 0, m.err
	}
	m.counts[slug]++
	return m.counts[slug], nil
}
