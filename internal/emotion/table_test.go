package emotion

import "testing"

func TestLookupTotal(t *testing.T) {
	// Every id in range resolves to a defined entry.
	for id := MinID; id <= MaxID; id++ {
		e := Lookup(id)
		if e.ID != id {
			t.Errorf("Lookup(%d).ID = %d", id, e.ID)
		}
		if e.Name == "" || e.Glyph == "" {
			t.Errorf("Lookup(%d) has empty name or glyph", id)
		}
	}
}

func TestNeutralFallback(t *testing.T) {
	tc := []struct {
		name string
		id   int
	}{
		{name: "zero", id: 0},
		{name: "negative", id: -3},
		{name: "past end", id: 96},
		{name: "far out of range", id: 100000},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFor(tt.id); got != "neutral-face" {
				t.Errorf("NameFor(%d) = %q, want neutral-face", tt.id, got)
			}
			if got := GlyphFor(tt.id); got != "😐" {
				t.Errorf("GlyphFor(%d) = %q, want 😐", tt.id, got)
			}
		})
	}
}

func TestIDFor(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  int
	}{
		{name: "canonical name", input: "neutral-face", want: 46},
		{name: "first entry", input: "grinning-face", want: 1},
		{name: "last entry", input: "enraged-face", want: 95},
		{name: "mixed case", input: "Face-With-Diagonal-Mouth", want: 69},
		{name: "upper case", input: "CRYING-FACE", want: 84},
		{name: "surrounding whitespace", input: "  thinking-face ", want: 32},
		{name: "unknown name", input: "ambivalent-toaster", want: NeutralID},
		{name: "empty", input: "", want: NeutralID},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := IDFor(tt.input); got != tt.want {
				t.Errorf("IDFor(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Names are unique after lowercasing, so id -> name -> id is the identity.
	for id := MinID; id <= MaxID; id++ {
		if got := IDFor(NameFor(id)); got != id {
			t.Errorf("IDFor(NameFor(%d)) = %d", id, got)
		}
	}
}

func TestEntriesCopy(t *testing.T) {
	entries := Entries()
	if len(entries) != MaxID {
		t.Fatalf("expected %d entries, got %d", MaxID, len(entries))
	}

	entries[0].Name = "mutated"
	if NameFor(1) == "mutated" {
		t.Error("Entries should return a copy, not the backing table")
	}
}
