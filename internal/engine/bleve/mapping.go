package bleve

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
)

// newIndexMapping builds the movie document mapping. Text fields are analyzed
// for full-text retrieval; genre names use the keyword analyzer so the facet
// buckets and the hard filters see whole genre values, not tokens.
func newIndexMapping() mapping.IndexMapping {
	movieMapping := bleve.NewDocumentMapping()

	for _, field := range []string{"title", "original_title", "overview"} {
		movieMapping.AddFieldMappingsAt(field, textField())
	}

	collectionMapping := bleve.NewDocumentMapping()
	collectionMapping.AddFieldMappingsAt("name", textField())
	movieMapping.AddSubDocumentMapping("collection", collectionMapping)

	genreMapping := bleve.NewDocumentMapping()
	genreMapping.AddFieldMappingsAt("name", keywordField())
	movieMapping.AddSubDocumentMapping("genres", genreMapping)

	castMapping := bleve.NewDocumentMapping()
	castMapping.AddFieldMappingsAt("name", textField())
	castMapping.AddFieldMappingsAt("character", textField())
	movieMapping.AddSubDocumentMapping("cast", castMapping)

	adjustedMapping := bleve.NewDocumentMapping()
	adjustedMapping.AddFieldMappingsAt("name", textField())
	movieMapping.AddSubDocumentMapping("cast_adjusted", adjustedMapping)

	for _, field := range []string{"release_year", "runtime", "popularity", "weighted_rating"} {
		movieMapping.AddFieldMappingsAt(field, bleve.NewNumericFieldMapping())
	}
	movieMapping.AddFieldMappingsAt("promoted", bleve.NewBooleanFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("movie", movieMapping)
	indexMapping.DefaultType = "movie"
	return indexMapping
}

func textField() *mapping.FieldMapping {
	f := bleve.NewTextFieldMapping()
	f.Analyzer = standard.Name
	f.Store = false
	f.Index = true
	return f
}

func keywordField() *mapping.FieldMapping {
	f := bleve.NewTextFieldMapping()
	f.Analyzer = keyword.Name
	f.Store = false
	f.Index = true
	return f
}
