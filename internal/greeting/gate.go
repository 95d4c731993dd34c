package greeting

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidUnlockTime is returned for unlock times that match no
// supported layout or name an impossible date.
var ErrInvalidUnlockTime = errors.New("greeting: invalid unlock time")

// localDateTime matches "YYYY-MM-DD HH:mm[:ss]", "YYYY/MM/DD ...",
// "YYYY-MM-DDTHH:mm[:ss]" and the compact "YYYYMMDD[ HH[:mm[:ss]]]".
var localDateTime = regexp.MustCompile(`^(\d{4})[-/]?(\d{1,2})[-/]?(\d{1,2})(?:[ T](\d{1,2})(?::(\d{1,2})(?::(\d{1,2}))?)?)?$`)

// ParseUnlockTime parses s as a wall-clock time in loc. Strings carrying an
// explicit offset (RFC 3339) keep it. An empty string yields the zero time,
// which means "never locked".
func ParseUnlockTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	m := localDateTime.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidUnlockTime, s)
	}
	var f [6]int
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		f[i], _ = strconv.Atoi(part)
	}
	year, month, day, hour, minute, sec := f[0], f[1], f[2], f[3], f[4], f[5]

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc)
	// time.Date normalizes overflow; reject anything it had to move.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrInvalidUnlockTime, s)
	}
	return t, nil
}

// FormatRemaining renders d as "HH:MM:SS", prefixed with a day count once
// d reaches a full day. Negative durations render as zero and partial
// seconds are truncated.
func FormatRemaining(d time.Duration) string {
	total := max(int64(d/time.Second), 0)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	clock := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	switch {
	case days == 1:
		return "1 day " + clock
	case days > 1:
		return fmt.Sprintf("%d days %s", days, clock)
	default:
		return clock
	}
}

// Gate holds the greeting back until a configured moment.
type Gate struct {
	unlockAt time.Time
}

// NewGate creates a gate opening at unlockAt. The zero time gives a gate
// that is always open.
func NewGate(unlockAt time.Time) Gate {
	return Gate{unlockAt: unlockAt}
}

// UnlockAt returns the opening time; zero for an always-open gate.
func (g Gate) UnlockAt() time.Time {
	return g.unlockAt
}

// Locked reports whether the gate is still closed at now. It opens exactly
// when the remaining time reaches zero.
func (g Gate) Locked(now time.Time) bool {
	return !g.unlockAt.IsZero() && now.Before(g.unlockAt)
}

// Remaining returns the time left until the gate opens, never negative.
func (g Gate) Remaining(now time.Time) time.Duration {
	if g.unlockAt.IsZero() {
		return 0
	}
	return max(g.unlockAt.Sub(now), 0)
}
