package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hbd/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greeting.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	def := DefaultGreetingConfig()
	if cfg.Title != def.Title || cfg.ParticlesPerClick != 30 || cfg.GrandParticles != 50 {
		t.Errorf("embedded config = %+v, expected defaults", cfg)
	}
	if !slices.Equal(cfg.Messages, def.Messages) {
		t.Errorf("embedded messages = %q, expected %q", cfg.Messages, def.Messages)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, DirName, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "greeting.yaml")
	if err := os.WriteFile(path, []byte("name: Grace\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Name != "Grace" || cfg.Source != path {
		t.Errorf("got name %q from %q, expected Grace from %q", cfg.Name, cfg.Source, path)
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "name: Ada\nmessages: [\"hello\"]\nparticles_per_click: 12\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Name != "Ada" || cfg.ParticlesPerClick != 12 {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Title != "Happy Birthday" || cfg.GrandParticles != 50 {
		t.Errorf("missing keys should keep defaults, got title %q grand %d", cfg.Title, cfg.GrandParticles)
	}
	if !slices.Equal(cfg.Messages, []string{"hello"}) {
		t.Errorf("messages = %q, expected [hello]", cfg.Messages)
	}

	rc := cfg.Apply(core.DefaultConfig())
	if rc.ParticlesPerClick != 12 || rc.GrandParticles != 50 {
		t.Errorf("Apply() = %+v", rc)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		invalid bool
		contain string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), false, "config: read"},
		{"bad yaml", writeConfig(t, "messages: [unterminated\n"), false, "config: parse"},
		{"negative count", writeConfig(t, "particles_per_click: -1\n"), true, "particles_per_click"},
		{"huge count", writeConfig(t, "grand_particles: 100000\n"), true, "grand_particles"},
		{"bad unlock time", writeConfig(t, "unlock_time: someday\n"), true, "unlock_time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalid) != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v (%v)", !tc.invalid, tc.invalid, err)
			}
			if !strings.Contains(err.Error(), tc.contain) {
				t.Errorf("error %q should mention %q", err, tc.contain)
			}
		})
	}
}

func TestGate(t *testing.T) {
	cfg := DefaultGreetingConfig()
	cfg.UnlockTime = "2030-01-01 00:00"

	g, err := cfg.Gate(time.UTC)
	if err != nil {
		t.Fatalf("Gate() failed: %v", err)
	}
	if !g.Locked(time.Date(2029, 12, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("gate should be locked before 2030")
	}

	cfg.UnlockTime = ""
	g, err = cfg.Gate(time.UTC)
	if err != nil || g.Locked(time.Now()) {
		t.Errorf("empty unlock time should give an open gate (err %v)", err)
	}
}

func TestCard(t *testing.T) {
	cfg := GreetingConfig{Title: "T", Name: "N", Messages: []string{"m"}}
	if got := cfg.Card().Lines(); !slices.Equal(got, []string{"T", "N", "", "m"}) {
		t.Errorf("Card().Lines() = %q", got)
	}
}

func TestDefaultYAMLMatchesBuiltin(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("embedded default is empty")
	}
	cfg, err := parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultGreetingConfig()
	if cfg.Title != def.Title || cfg.ParticlesPerClick != def.ParticlesPerClick || cfg.GrandParticles != def.GrandParticles {
		t.Errorf("embedded default %+v drifted from built-in %+v", cfg, def)
	}
}
