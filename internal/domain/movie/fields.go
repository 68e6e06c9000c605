package movie

// Index field names. The compiler, the boost bands, and the engine mapping
// all refer to the same set, so a rename here renames it everywhere.
const (
	FieldTitle          = "title"
	FieldOriginalTitle  = "original_title"
	FieldOverview       = "overview"
	FieldCollectionName = "collection.name"
	FieldGenreName      = "genres.name"

	// FieldCastName and FieldCastCharacter serve free-text queries that only
	// happen to mention people or characters.
	FieldCastName      = "cast.name"
	FieldCastCharacter = "cast.character"

	// FieldCastAdjustedName is a separate copy of the cast names, scored on
	// its own so queries confidently about a person can be boosted without
	// touching generic cast matching.
	FieldCastAdjustedName = "cast_adjusted.name"

	FieldReleaseYear    = "release_year"
	FieldRuntime        = "runtime"
	FieldPopularity     = "popularity"
	FieldWeightedRating = "weighted_rating"
	FieldPromoted       = "promoted"
)
