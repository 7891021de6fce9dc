package teamname

import "testing"

func TestMatcher_Confidence_RuleLadder(t *testing.T) {
	t.Parallel()

	m := New()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "exact", a: "Victoria Boys", b: "Victoria Boys", want: 1.0},
		{name: "case insensitive", a: "victoria boys", b: "Victoria Boys", want: 0.95},
		{name: "normalized affix", a: "SV Epe", b: "Epe", want: 0.9},
		{name: "known alias", a: "V. Boys", b: "Victoria Boys", want: 1.0},
		{name: "affix-swapped normalized", a: "Apeldoorn CSV", b: "CSV Apeldoorn", want: 0.9},
		{name: "alias reverse direction", a: "Rev", b: "Robur/Vel.", want: 1.0},
		{name: "substring containment", a: "Columbia Zaterdag", b: "Columbia", want: 0.8},
		{name: "unrelated", a: "Victoria Boys", b: "Robur et Velocitas", want: 0.0},
		{name: "empty side", a: "", b: "Victoria Boys", want: 0.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := m.Confidence(tt.a, tt.b)
			if got != tt.want {
				t.Fatalf("Confidence(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatcher_Confidence_Commutative(t *testing.T) {
	t.Parallel()

	m := New()
	pairs := [][2]string{
		{"Victoria Boys", "Victoria Boys"},
		{"victoria boys", "Victoria Boys"},
		{"V. Boys", "Victoria Boys"},
		{"Apeldornse Boys", "Apeldoornse Boys"}, // single-typo fuzzy pair
		{"Victoria Boys", "Robur et Velocitas"},
	}

	for _, pair := range pairs {
		forward := m.Confidence(pair[0], pair[1])
		backward := m.Confidence(pair[1], pair[0])
		if forward != backward {
			t.Fatalf("Confidence(%q, %q) = %v but reversed = %v", pair[0], pair[1], forward, backward)
		}
		// Deterministic across repeated calls.
		if again := m.Confidence(pair[0], pair[1]); again != forward {
			t.Fatalf("Confidence(%q, %q) not deterministic: %v then %v", pair[0], pair[1], forward, again)
		}
	}
}

func TestMatcher_Confidence_FuzzyThresholdBoundary(t *testing.T) {
	t.Parallel()

	// "Apeldornse Boys" is one deletion from "Apeldoornse Boys":
	// 15 vs 16 runes, ratio 1 - 1/16 = 0.9375, above the 0.85 default.
	m := New()
	got := m.Confidence("Apeldornse Boys", "Apeldoornse Boys")
	if got < 0.85 || got > 0.95 {
		t.Fatalf("fuzzy confidence = %v, want within [0.85, 0.95]", got)
	}

	// Raising the threshold above the pair's similarity rejects it.
	strict := New(WithThreshold(0.95))
	if got := strict.Confidence("Apeldornse Boys", "Apeldoornse Boys"); got != 0.0 {
		t.Fatalf("strict confidence = %v, want 0.0", got)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  FC   Twente ", want: "Twente"},
		{in: "Columbia AVV", want: "Columbia"},
		{in: "R.e.V.", want: "ReV"},
		{in: "Victoria Boys", want: "Victoria Boys"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveInList(t *testing.T) {
	t.Parallel()

	teams := []string{"AVV Columbia", "Victoria Boys", "Apeldoornse Boys"}

	if got := ResolveInList("victoria boys", teams); got != "Victoria Boys" {
		t.Fatalf("exact-insensitive resolve = %q", got)
	}
	if got := ResolveInList("Columbia", teams); got != "AVV Columbia" {
		t.Fatalf("substring resolve = %q", got)
	}
	if got := ResolveInList("SC Heerenveen", teams); got != "" {
		t.Fatalf("unrelated resolve = %q, want empty", got)
	}
	if got := ResolveInList("  ", teams); got != "" {
		t.Fatalf("blank resolve = %q, want empty", got)
	}
}

func TestMatcher_Aliases_DeterministicOrder(t *testing.T) {
	t.Parallel()

	// "Stad" belongs to two canonical entries, so the output order
	// depends on the canonical visit order.
	m := New(WithAliases(map[string][]string{
		"Zwolle United": {"Stad", "ZU"},
		"Arnhem City":   {"Stad", "AC"},
	}))

	want := []string{"Stad", "Arnhem City", "AC", "Zwolle United", "ZU"}

	for i := 0; i < 25; i++ {
		got := m.Aliases("Stad")
		if len(got) != len(want) {
			t.Fatalf("Aliases(Stad) = %v, want %v", got, want)
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("Aliases(Stad) = %v, want %v", got, want)
			}
		}
	}
}
