package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		x, y    int
		wantErr bool
	}{
		{"10,5", 10, 5, false},
		{" 3 , 4 ", 3, 4, false},
		{"0,0", 0, 0, false},
		{"10", 0, 0, true},
		{"a,b", 0, 0, true},
		{"1,", 0, 0, true},
	}
	for _, tc := range tests {
		x, y, err := parsePoint(tc.in)
		if tc.wantErr {
			if !errors.Is(err, errBadPoint) {
				t.Errorf("parsePoint(%q) error = %v, expected errBadPoint", tc.in, err)
			}
			continue
		}
		if err != nil || x != tc.x || y != tc.y {
			t.Errorf("parsePoint(%q) = %d, %d, %v", tc.in, x, y, err)
		}
	}
}

func TestRenderPreviewDeterministic(t *testing.T) {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = 30, 10
	rc.Seed = 7
	points := [][2]int{{10, 5}, {20, 3}}

	a := renderPreview(rc, points, 5).ASCII()
	b := renderPreview(rc, points, 5).ASCII()
	if a != b {
		t.Fatal("same seed should give the same frame")
	}
	if strings.TrimSpace(a) == "" {
		t.Fatal("preview frame is empty")
	}
	if lines := strings.Split(a, "\n"); len(lines) != 10 {
		t.Errorf("expected 10 rows, got %d", len(lines))
	}
}

func TestRenderPreviewFadesOut(t *testing.T) {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = 30, 10
	rc.Seed = 7

	// Every particle is gone well before 70 frames.
	cv := renderPreview(rc, nil, 70)
	if cv.Lit() != 0 {
		t.Errorf("expected a dark canvas, %d dots lit", cv.Lit())
	}
}
