package greeting

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

func TestCardLines(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want []string
	}{
		{"full", Card{Title: "Happy Birthday", Name: "Ada", Messages: []string{"one", "two"}},
			[]string{"Happy Birthday", "Ada", "", "one", "two"}},
		{"no name", Card{Title: "Happy Birthday", Messages: []string{"one"}},
			[]string{"Happy Birthday", "", "one"}},
		{"messages only", Card{Messages: []string{"one"}}, []string{"one"}},
		{"empty", Card{}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.card.Lines(); !slices.Equal(got, tc.want) {
				t.Errorf("Lines() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestCardDrawCentersText(t *testing.T) {
	s := core.NewScreen(30, 10)
	Card{Title: "Happy Birthday", Name: "Ada"}.Draw(s, 10)

	// Two lines in 10 rows start at row 4.
	if row := s.Row(4); strings.TrimSpace(row) != "Happy Birthday" {
		t.Errorf("row 4 = %q", row)
	}
	if got := s.GetCell(8, 4); got.Rune != 'H' || !got.Bold {
		t.Errorf("title cell = %+v, expected bold 'H'", got)
	}
	if row := s.Row(5); strings.TrimSpace(row) != "Ada" {
		t.Errorf("row 5 = %q", row)
	}
}

func TestDrawCountdown(t *testing.T) {
	at := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	s := core.NewScreen(60, 20)
	DrawCountdown(s, 20, NewGate(at), at.Add(-2*time.Hour-3*time.Second))

	out := s.String()
	for _, want := range []string{"02:00:03", "opens 2025-10-14 08:00:00", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("countdown screen missing %q:\n%s", want, out)
		}
	}

	// A 34x9 box centered in 60x20 starts at row 5; text sits two rows in.
	if row := s.Row(7); !strings.Contains(row, "Something is waiting for you") {
		t.Errorf("Row(7) = %q, expected the heading inside the box", row)
	}
	if row := s.Row(9); !strings.Contains(row, "02:00:03") {
		t.Errorf("Row(9) = %q, expected the countdown", row)
	}
}
