package taxonomy

import "testing"

func TestIndex_Classify(t *testing.T) {
	x := New()

	tests := []struct {
		name  string
		class string
		want  string
	}{
		{
			"two level subgroup before top level",
			"DNA/hAT-Charlie",
			"DNA/hAT",
		},
		{
			"top level fallback",
			"DNA/Zisupton",
			"DNA",
		},
		{
			"exact group",
			"LINE/L1",
			"LINE/L1",
		},
		{
			"ambiguity marker stripped",
			"LTR/Gypsy?",
			"LTR/Gypsy",
		},
		{
			"unclassified sentinel",
			"Unknown",
			"Unknown",
		},
		{
			"empty class",
			"",
			Unclassified,
		},
		{
			"unrecognized class",
			"Crypton-madeup",
			"Other",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := x.Classify(tt.class); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.class, got, tt.want)
			}
		})
	}
}

func TestIndex_Known(t *testing.T) {
	x := New()

	if !x.Known("DNA/hAT-Charlie") {
		t.Error("DNA/hAT-Charlie should be a known class")
	}
	if !x.Known("LINE/L1?") {
		t.Error("ambiguity marker should not affect Known")
	}
	if x.Known("NotARepeat/Family") {
		t.Error("NotARepeat/Family should be unknown")
	}
}

func TestIndex_Groups(t *testing.T) {
	x := New()

	got := x.Groups()
	if len(got) != len(groups) {
		t.Fatalf("Groups() returned %d groups, want %d", len(got), len(groups))
	}

	pos := make(map[string]int)
	for i, g := range got {
		if _, dup := pos[g]; dup {
			t.Errorf("group %q appears twice", g)
		}
		pos[g] = i
	}

	for _, required := range []string{"DNA", "LINE", "LTR", "SINE", "Satellite", "Other", "Unknown", "rRNA"} {
		if _, ok := pos[required]; !ok {
			t.Errorf("required group %q missing", required)
		}
	}

	// presentation order, not byte order: families in their declared
	// sequence, parents before subgroups, catch-alls last
	ordered := []string{"DNA", "RC", "LINE", "LTR", "SINE", "Satellite", "Simple_repeat", "rRNA", "srpRNA", "Other", "Unknown"}
	for i := 1; i < len(ordered); i++ {
		if pos[ordered[i-1]] > pos[ordered[i]] {
			t.Errorf("group %q listed after %q", ordered[i-1], ordered[i])
		}
	}
	if pos["DNA"] > pos["DNA/hAT"] {
		t.Error("parent group DNA listed after DNA/hAT")
	}
	if pos["SINE/tRNA"] > pos["Satellite"] {
		t.Error("Satellite must follow the SINE subgroups")
	}
	if pos["Unknown"] != len(got)-1 {
		t.Error("Unknown must be the last group")
	}
}
