package greeting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hbd/internal/greeting"
)

func TestParseUnlockTime(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	want := time.Date(2025, 10, 14, 20, 30, 0, 0, loc)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"dashes", "2025-10-14 20:30", want},
		{"dashes with seconds", "2025-10-14 20:30:00", want},
		{"slashes", "2025/10/14 20:30", want},
		{"iso", "2025-10-14T20:30", want},
		{"compact", "20251014 20:30", want},
		{"compact hour only", "20251014 20", time.Date(2025, 10, 14, 20, 0, 0, 0, loc)},
		{"date only", "2025-10-14", time.Date(2025, 10, 14, 0, 0, 0, 0, loc)},
		{"single digits", "2025-1-2 3:4:5", time.Date(2025, 1, 2, 3, 4, 5, 0, loc)},
		{"surrounding space", "  2025-10-14 20:30  ", want},
		{"explicit offset", "2025-10-14T12:30:00Z", want},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := greeting.ParseUnlockTime(tc.input, loc)
			if err != nil {
				t.Fatalf("ParseUnlockTime(%q) failed: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseUnlockTime(%q) = %v, expected %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseUnlockTimeEmpty(t *testing.T) {
	got, err := greeting.ParseUnlockTime("   ", nil)
	if err != nil {
		t.Fatalf("empty unlock time failed: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("empty unlock time = %v, expected zero", got)
	}
}

func TestParseUnlockTimeInvalid(t *testing.T) {
	for _, input := range []string{
		"tomorrow",
		"2025-13-01 10:00",
		"2025-02-30",
		"2025-10-14 24:00",
		"2025-10-14 10:61",
		"25-10-14",
	} {
		if _, err := greeting.ParseUnlockTime(input, time.UTC); !errors.Is(err, greeting.ErrInvalidUnlockTime) {
			t.Errorf("ParseUnlockTime(%q) error = %v, expected ErrInvalidUnlockTime", input, err)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-5 * time.Second, "00:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{23*time.Hour + 59*time.Minute + 59*time.Second, "23:59:59"},
		{24 * time.Hour, "1 day 00:00:00"},
		{3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second, "3 days 04:05:06"},
	}

	for _, tc := range tests {
		if got := greeting.FormatRemaining(tc.d); got != tc.want {
			t.Errorf("FormatRemaining(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}

func TestGate(t *testing.T) {
	at := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	g := greeting.NewGate(at)

	before := at.Add(-90 * time.Second)
	if !g.Locked(before) {
		t.Error("gate should be locked before the unlock time")
	}
	if g.Remaining(before) != 90*time.Second {
		t.Errorf("Remaining = %v, expected 90s", g.Remaining(before))
	}

	// Opens exactly when nothing remains.
	if g.Locked(at) {
		t.Error("gate should be open at the unlock time")
	}
	if g.Remaining(at.Add(time.Hour)) != 0 {
		t.Error("Remaining after unlock should be 0")
	}
}

func TestGateZeroIsOpen(t *testing.T) {
	var g greeting.Gate
	if g.Locked(time.Now()) || g.Remaining(time.Now()) != 0 {
		t.Error("zero gate should always be open")
	}
}
