// Package parse turns raw query text into a Query with recognized genre and
// person entities. Recognition is deliberately cheap: a fixed genre
// vocabulary and bigram dictionary lookups, no NLP pipeline.
package parse

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/query"
	"github.com/cinerank/cinerank/internal/logger"
	"github.com/cinerank/cinerank/internal/metrics"
	"github.com/cinerank/cinerank/internal/slug"
)

// genreVocabulary is the hand-curated list of recognizable genres. Matches
// are collected in this order.
var genreVocabulary = []string{
	"comedy", "crime", "drama", "science fiction", "romance", "horror",
	"thriller", "action", "adventure", "fantasy", "mystery", "animation",
	"family", "foreign", "documentary", "music", "history", "western",
	"tv movie",
}

// genrePatterns holds one whole-word pattern per vocabulary entry, compiled
// once. Word boundaries keep "horrorshow" from matching "horror".
var genrePatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(genreVocabulary))
	for _, g := range genreVocabulary {
		patterns[g] = regexp.MustCompile(`\b` + regexp.QuoteMeta(g) + `\b`)
	}
	return patterns
}()

// Service is the query parser. It logs through the request-scoped context
// logger, so it carries no logger of its own.
type Service struct {
	dict Dictionary
}

// New creates a query parser backed by the given dictionary.
func New(dict Dictionary) *Service {
	return &Service{dict: dict}
}

// Parse extracts genre and person entities from raw query text. It never
// fails: dictionary lookup errors are treated as misses so a degraded
// dictionary only costs recognition, not the whole search.
func (s *Service) Parse(ctx context.Context, words string) query.Query {
	entities := map[query.EntityType][]string{}

	s.extractGenres(words, entities)
	s.extractPersons(ctx, words, entities)

	metrics.ParserEntitiesTotal.WithLabelValues(string(query.Genre)).
		Add(float64(len(entities[query.Genre])))
	metrics.ParserEntitiesTotal.WithLabelValues(string(query.Person)).
		Add(float64(len(entities[query.Person])))

	return query.New(words, entities)
}

// extractGenres appends every vocabulary genre that occurs as a whole word
// anywhere in the text, in vocabulary order.
func (s *Service) extractGenres(words string, entities map[query.EntityType][]string) {
	lowered := strings.ToLower(words)
	for _, genre := range genreVocabulary {
		if genrePatterns[genre].MatchString(lowered) {
			entities[query.Genre] = append(entities[query.Genre], genre)
		}
	}
}

// extractPersons looks every bigram shingle up in the person dictionary and
// appends hits in shingle order, duplicates retained.
func (s *Service) extractPersons(ctx context.Context, words string, entities map[query.EntityType][]string) {
	for _, shingle := range shingles(words) {
		_, err := s.dict.Get(ctx, slug.Make(shingle))
		switch {
		case err == nil:
			entities[query.Person] = append(entities[query.Person], shingle)
		case errors.Is(err, domain.ErrNotFound):
			// miss, keep going
		default:
			logger.FromContext(ctx).Warn("dictionary lookup failed, treating as miss",
				zap.String("shingle", shingle), zap.Error(err))
		}
	}
}

// shingles returns the overlapping bigrams of the text, split on single
// spaces. A single word yields none: one token can never name a person here.
func shingles(words string) []string {
	tokens := strings.Split(words, " ")
	if len(tokens) < 2 {
		return nil
	}
	if len(tokens) == 2 {
		return []string{tokens[0] + " " + tokens[1]}
	}

	out := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
