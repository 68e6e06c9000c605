package expr

import "testing"

func TestMatchField(t *testing.T) {
	m := MatchField("title", "star wars", 1.4)
	if m.Field != "title" || m.Text != "star wars" {
		t.Errorf("MatchField = %+v", m)
	}
	if m.Boost != 1.4 {
		t.Errorf("Boost = %v, want 1.4", m.Boost)
	}
	if m.Fuzziness != 0 {
		t.Errorf("Fuzziness = %d, want 0", m.Fuzziness)
	}
}

func TestFuzzyMatch(t *testing.T) {
	m := FuzzyMatch("overview", "star war", 1.0)
	if m.Fuzziness != 1 {
		t.Errorf("Fuzziness = %d, want 1", m.Fuzziness)
	}
}

func TestRange(t *testing.T) {
	r := Range("runtime", 100, 359, 1.17)
	if r.Min != 100 || r.Max != 359 || r.Boost != 1.17 {
		t.Errorf("Range = %+v", r)
	}
}

func TestDisjunctionOr_DoesNotMutateReceiver(t *testing.T) {
	base := Or(TermMatch("genres.name", "action"))
	grown := base.Or(TermMatch("genres.name", "comedy"))

	if len(base.Children) != 1 {
		t.Errorf("base has %d children after Or, want 1", len(base.Children))
	}
	if len(grown.Children) != 2 {
		t.Errorf("grown has %d children, want 2", len(grown.Children))
	}
}

func TestDisjunctionOr_NoAliasing(t *testing.T) {
	// Two appends off the same prefix must not clobber each other.
	base := Or(TermMatch("f", "a"), TermMatch("f", "b"))
	left := base.Or(TermMatch("f", "left"))
	right := base.Or(TermMatch("f", "right"))

	if got := left.Children[2].(Term).Text; got != "left" {
		t.Errorf("left child = %q, want %q", got, "left")
	}
	if got := right.Children[2].(Term).Text; got != "right" {
		t.Errorf("right child = %q, want %q", got, "right")
	}
}

func TestConjunctionAnd_DoesNotMutateReceiver(t *testing.T) {
	base := And(TermMatch("f", "a"))
	grown := base.And(TermMatch("f", "b"))

	if len(base.Children) != 1 {
		t.Errorf("base has %d children after And, want 1", len(base.Children))
	}
	if len(grown.Children) != 2 {
		t.Errorf("grown has %d children, want 2", len(grown.Children))
	}
}

func TestDisjunctionIsEmpty(t *testing.T) {
	if !(Disjunction{}).IsEmpty() {
		t.Error("empty disjunction reported non-empty")
	}
	if Or(TermMatch("f", "a")).IsEmpty() {
		t.Error("non-empty disjunction reported empty")
	}
}
