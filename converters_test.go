package cinerank

import (
	"reflect"
	"testing"
)

func TestMovieConversionRoundTrip(t *testing.T) {
	in := Movie{
		ID:             "m1",
		Title:          "Die Hard",
		OriginalTitle:  "Die Hard",
		Overview:       "NYPD cop John McClane",
		Genres:         []string{"action", "thriller"},
		Collection:     "Die Hard Collection",
		Cast: []CastMember{
			{Name: "Bruce Willis", Character: "John McClane"},
			{Name: "Alan Rickman", Character: "Hans Gruber"},
		},
		Runtime:        132,
		ReleaseYear:    1988,
		Popularity:     42.5,
		WeightedRating: 7.8,
		Promoted:       true,
	}

	out := fromInternalMovie(toInternalMovie(in))
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip changed the movie:\ngot:  %+v\nwant: %+v", out, in)
	}
}

func TestMovieConversionNoCollection(t *testing.T) {
	internal := toInternalMovie(Movie{ID: "m1", Title: "Solo"})
	if internal.Collection != nil {
		t.Errorf("collection = %+v, want nil for empty name", internal.Collection)
	}
	if got := fromInternalMovie(internal).Collection; got != "" {
		t.Errorf("collection = %q, want empty", got)
	}
}

func TestPackFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string][]string
		want    string
	}{
		{name: "nil", filters: nil, want: ""},
		{
			name:    "single",
			filters: map[string][]string{"year": {"2020"}},
			want:    "year=2020",
		},
		{
			name: "sorted groups and joined values",
			filters: map[string][]string{
				"year":  {"2020"},
				"genre": {"action", "drama"},
			},
			want: "genre=action,drama::year=2020",
		},
		{
			name:    "empty values dropped",
			filters: map[string][]string{"genre": {}},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packFilters(tt.filters); got != tt.want {
				t.Errorf("packFilters() = %q, want %q", got, tt.want)
			}
		})
	}
}
