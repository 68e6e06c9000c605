package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Bruce Willis", "person-bruce-willis"},
		{"diacritics stripped", "José  Ñandú", "person-jose-nandu"},
		{"extra whitespace collapsed", "  Eddie   Murphy ", "person-eddie-murphy"},
		{"already normalized", "eddie-murphy", "person-eddie-murphy"},
		{"single word", "Madonna", "person-madonna"},
		{"empty", "", "person-"},
		{"tabs and newlines", "Uma\tThurman\n", "person-uma-thurman"},
		{"accents mixed case", "Penélope CRUZ", "person-penelope-cruz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	a := Make("José Ñandú")
	b := Make("José Ñandú")
	if a != b {
		t.Errorf("Make not deterministic: %q vs %q", a, b)
	}
}

func TestMake_IdempotentOnNormalizedText(t *testing.T) {
	once := Make("jose nandu")
	again := Make("jose nandu")
	if once != again {
		t.Errorf("normalized input unstable: %q vs %q", once, again)
	}
	if once != "person-jose-nandu" {
		t.Errorf("Make = %q", once)
	}
}
