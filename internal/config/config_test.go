package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"gap does not fit", func(c *FlappyConfig) { c.Pairs.Gap = 600 }, "exceeds playfield height"},
		{"positive jump", func(c *FlappyConfig) { c.Physics.JumpImpulse = 8 }, "jump_impulse"},
		{"zero interval", func(c *FlappyConfig) { c.Pairs.Interval = 0 }, "pairs.interval"},
		{"inverted speed range", func(c *FlappyConfig) { c.Hazards.MinSpeed = 9 }, "hazard speed range"},
		{"unknown scoring", func(c *FlappyConfig) { c.Scoring.Mode = "both" }, "unknown scoring.mode"},
		{"tick scoring without divisor", func(c *FlappyConfig) {
			c.Scoring.Mode = ScoringTicks
			c.Scoring.TicksPerPoint = 0
		}, "ticks_per_point"},
		{"player outside playfield", func(c *FlappyConfig) { c.Player.X = 470 }, "player x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestMaxTop(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Pairs.Gap = 150
	cfg.Pairs.MinTop = 60
	cfg.Pairs.MinBottom = 120

	if got := cfg.MaxTop(); got != 370 {
		t.Errorf("MaxTop() = %d, expected 370", got)
	}
}

func TestPlayerStartY(t *testing.T) {
	zero, custom := 0.0, 100.0

	tests := []struct {
		name     string
		startY   *float64
		expected float64
	}{
		{"unset centers", nil, 320},
		{"zero is the ceiling", &zero, 0},
		{"explicit", &custom, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			cfg.Player.StartY = tc.startY
			if got := cfg.PlayerStartY(); got != tc.expected {
				t.Errorf("PlayerStartY() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLoadFlappyStartYAtCeiling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ceiling.yaml")
	if err := os.WriteFile(path, []byte("player:\n  start_y: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if got := cfg.PlayerStartY(); got != 0 {
		t.Errorf("start_y: 0 should spawn at the ceiling, got %v", got)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	data := "physics:\n  gravity: 0.25\nscoring:\n  mode: ticks\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Mode != ScoringTicks {
		t.Errorf("scoring mode = %q, expected ticks", cfg.Scoring.Mode)
	}
	// Unlisted values keep their defaults
	if cfg.Pairs.Gap != 140 {
		t.Errorf("gap = %d, expected default 140", cfg.Pairs.Gap)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pairs:\n  gap: 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("impossible layout should fail validation, got %v", err)
	}
}

func TestLoadFlappyEmbeddedFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy(\"\") failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("fallback config should equal defaults, got %+v", cfg)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != "" {
		t.Errorf("ParseMode(\"\") = %q, %v", m, err)
	}
	if m, err := ParseMode("gentle"); err != nil || m != ModeGentle {
		t.Errorf("ParseMode(gentle) = %q, %v", m, err)
	}
	if _, err := ParseMode("nightmare"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestApplyModeKeepsPlayfieldAndScoring(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Playfield.Height = 800
	cfg.Scoring.Mode = ScoringTicks

	if err := ApplyMode(&cfg, ModeGentle); err != nil {
		t.Fatalf("gentle config should validate: %v", err)
	}

	if cfg.Pairs.Gap != 180 {
		t.Errorf("gentle gap = %d, expected 180", cfg.Pairs.Gap)
	}
	if cfg.Playfield.Height != 800 || cfg.Scoring.Mode != ScoringTicks {
		t.Error("ApplyMode should not touch playfield or scoring")
	}

	if err := ApplyMode(&cfg, ModeClassic); err != nil {
		t.Fatalf("classic config should validate: %v", err)
	}
	if cfg.Pairs != DefaultFlappyConfig().Pairs {
		t.Error("classic should restore default pair constants")
	}
}

func TestModesSortedAndHazardIntervalRatio(t *testing.T) {
	list := Modes()
	if len(list) != 2 || list[0].Mode != ModeClassic || list[1].Mode != ModeGentle {
		t.Fatalf("Modes() = %+v", list)
	}

	for _, info := range list {
		cfg := DefaultFlappyConfig()
		if err := ApplyMode(&cfg, info.Mode); err != nil {
			t.Fatalf("%s: %v", info.Mode, err)
		}
		ratio := float64(cfg.Hazards.Interval) / float64(cfg.Pairs.Interval)
		if ratio < 2 || ratio > 3.5 {
			t.Errorf("%s: hazard/pair interval ratio %.2f outside [2, 3.5]", info.Mode, ratio)
		}
	}
}

func TestApplyModeRejectsPresetThatDoesNotFit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	data := []byte("playfield:\n  height: 260\nplayer:\n  start_y: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("classic layout fits 260 units: %v", err)
	}

	// 60 + 180 + 60 > 260
	err = ApplyMode(&cfg, ModeGentle)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("ApplyMode(gentle) = %v, expected ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "exceeds playfield height 260") {
		t.Errorf("error should name the gap layout: %v", err)
	}
}
