// Package hit defines the raw engine output shared between the engine
// adapter and the result assembler.
package hit

// Hit is one ranked engine hit. Hits arrive pre-sorted by descending score;
// nothing downstream may re-sort them.
type Hit struct {
	ID          string
	Score       float64
	Explanation string
}

// Bucket is one term/count pair inside a facet.
type Bucket struct {
	Term  string
	Count int
}

// Facet is a named set of term buckets, in the order the engine returned them.
type Facet struct {
	Name    string
	Buckets []Bucket
}
