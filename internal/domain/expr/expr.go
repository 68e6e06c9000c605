// Package expr defines the weighted boolean expression tree the compiler
// hands to the search engine. The tree is engine-agnostic: adapters translate
// it to their backend's query model, and tests assert on its shape directly.
package expr

// Expr is a node in the search expression tree.
type Expr interface {
	isExpr()
}

// Match is an analyzed full-text match on a single field. A Fuzziness of n
// tolerates up to n edits per term; 0 means exact. Boost is a multiplicative
// scoring weight, 1.0 is neutral.
type Match struct {
	Field     string
	Text      string
	Boost     float64
	Fuzziness int
}

// Term is an unanalyzed exact match on a single field. Terms are used as hard
// filters and carry no boost.
type Term struct {
	Field string
	Text  string
}

// NumericRange matches field values in [Min, Max] and applies Boost to them.
type NumericRange struct {
	Field string
	Min   float64
	Max   float64
	Boost float64
}

// BoolField matches a boolean field value and applies Boost to it.
type BoolField struct {
	Field string
	Value bool
	Boost float64
}

// Disjunction scores the best-matching child (logical OR).
type Disjunction struct {
	Children []Expr
}

// Conjunction requires every child to match (logical AND).
type Conjunction struct {
	Children []Expr
}

func (Match) isExpr()        {}
func (Term) isExpr()         {}
func (NumericRange) isExpr() {}
func (BoolField) isExpr()    {}
func (Disjunction) isExpr()  {}
func (Conjunction) isExpr()  {}

// MatchField creates an exact full-text match clause.
func MatchField(field, text string, boost float64) Match {
	return Match{Field: field, Text: text, Boost: boost}
}

// FuzzyMatch creates a single-edit-tolerant full-text match clause.
func FuzzyMatch(field, text string, boost float64) Match {
	return Match{Field: field, Text: text, Boost: boost, Fuzziness: 1}
}

// TermMatch creates an exact term filter clause.
func TermMatch(field, text string) Term {
	return Term{Field: field, Text: text}
}

// Range creates a boosted inclusive numeric range clause.
func Range(field string, min, max, boost float64) NumericRange {
	return NumericRange{Field: field, Min: min, Max: max, Boost: boost}
}

// Bool creates a boosted boolean field clause.
func Bool(field string, value bool, boost float64) BoolField {
	return BoolField{Field: field, Value: value, Boost: boost}
}

// Or creates a disjunction over the given children.
func Or(children ...Expr) Disjunction {
	return Disjunction{Children: children}
}

// And creates a conjunction over the given children.
func And(children ...Expr) Conjunction {
	return Conjunction{Children: children}
}

// Or returns a new disjunction with e appended. The receiver is not mutated,
// so partially built expressions can be shared safely.
func (d Disjunction) Or(e Expr) Disjunction {
	children := make([]Expr, 0, len(d.Children)+1)
	children = append(children, d.Children...)
	children = append(children, e)
	return Disjunction{Children: children}
}

// And returns a new conjunction with e appended. The receiver is not mutated.
func (c Conjunction) And(e Expr) Conjunction {
	children := make([]Expr, 0, len(c.Children)+1)
	children = append(children, c.Children...)
	children = append(children, e)
	return Conjunction{Children: children}
}

// IsEmpty reports whether the disjunction has no children.
func (d Disjunction) IsEmpty() bool { return len(d.Children) == 0 }
