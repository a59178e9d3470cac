package shared

import "testing"

func TestCleanPhone(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already clean",
			raw:  "15551234567",
			want: "15551234567",
		},
		{
			name: "formatted US number",
			raw:  "(555) 123-4567",
			want: "5551234567",
		},
		{
			name: "leading plus preserved",
			raw:  "+1 555 123 4567",
			want: "+15551234567",
		},
		{
			name: "interior plus dropped",
			raw:  "555+1234",
			want: "5551234",
		},
		{
			name: "no digits",
			raw:  "not a number",
			want: "",
		},
		{
			name: "bare plus",
			raw:  "+",
			want: "",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanPhone(tt.raw)
			if got != tt.want {
				t.Errorf("CleanPhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestContactKey(t *testing.T) {
	got := ContactKey("Ada", "(555) 000-1111")
	want := "Ada|5550001111"
	if got != want {
		t.Errorf("ContactKey() = %q, want %q", got, want)
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("GenerateID should never return an empty string")
	}

	if a == b {
		t.Error("consecutive IDs should differ")
	}
}
