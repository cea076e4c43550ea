package tui

import (
	"strings"
	"testing"
)

func TestCompositeAt(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := compositeAt(base, "XX\nXX", 3, 1, 10, 4)
	want := strings.Join([]string{
		"..........",
		"...XX.....",
		"...XX.....",
		"..........",
	}, "\n")
	if got != want {
		t.Fatalf("compositeAt:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCompositeCenteredClamps(t *testing.T) {
	base := "....\n....\n...."

	// Overlay larger than the base must clamp to the top-left corner rather
	// than go negative.
	got := compositeCentered(base, "ABCDEF\nGHIJKL", 4, 3)
	lines := splitLines(got)
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ABCD") {
		t.Fatalf("first line = %q, want prefix %q", lines[0], "ABCD")
	}
}

func TestPadRightAndTruncate(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, int) string
		in   string
		w    int
		want string
	}{
		{"pad short", padRight, "ab", 4, "ab  "},
		{"pad exact", padRight, "abcd", 4, "abcd"},
		{"truncate long", truncate, "abcdef", 4, "abc…"},
		{"truncate short", truncate, "ab", 4, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, tt.w); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth([]string{"a", "abc", "ab"}); got != 3 {
		t.Fatalf("maxLineWidth = %d, want 3", got)
	}
}
