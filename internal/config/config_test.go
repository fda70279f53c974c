package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultTetrisConfig()
	var fromYAML TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != cfg {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", fromYAML, cfg)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("expected no defaults for unknown game")
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "timing:\n  fall_interval: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Timing.FallInterval != time.Second {
		t.Errorf("FallInterval = %v, want 1s", cfg.Timing.FallInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Timing.LockDelay != 500*time.Millisecond {
		t.Errorf("LockDelay = %v, want default 500ms", cfg.Timing.LockDelay)
	}
	if cfg.Difficulty.Progression.MaxAt != 20000 {
		t.Errorf("MaxAt = %d, want default 20000", cfg.Difficulty.Progression.MaxAt)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("timing: [oops"), 0o600)
	if _, err := LoadTetris(bad); err == nil {
		t.Error("expected error for invalid YAML")
	}

	zero := filepath.Join(dir, "zero.yaml")
	os.WriteFile(zero, []byte("timing:\n  fall_interval: 0s\n"), 0o600)
	if _, err := LoadTetris(zero); err == nil {
		t.Error("expected error for zero fall interval")
	}

	slower := filepath.Join(dir, "slower.yaml")
	os.WriteFile(slower, []byte("difficulty:\n  scaling:\n    speed_multiplier: -1.5\n"), 0o600)
	if _, err := LoadTetris(slower); err == nil {
		t.Error("expected error for negative speed multiplier")
	}
}

func TestLoadTetrisSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "timing:\n  fall_interval: 250ms\n"
	if err := os.WriteFile(filepath.Join(dir, "tetris.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Timing.FallInterval != 250*time.Millisecond {
		t.Errorf("FallInterval = %v, want user config 250ms", cfg.Timing.FallInterval)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		lockDelay time.Duration
	}{
		{"", false, 0.0, 500 * time.Millisecond},
		{DifficultyEasy, true, 0.0, 750 * time.Millisecond},
		{DifficultyNormal, true, 0.3, 500 * time.Millisecond},
		{DifficultyHard, true, 0.7, 300 * time.Millisecond},
		{DifficultyFixed, false, 0.0, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		ApplyTetrisPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%q: Enabled = %v, want %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.level {
			t.Errorf("%q: InitialLevel = %v, want %v", tt.preset, cfg.Difficulty.InitialLevel, tt.level)
		}
		if cfg.Timing.LockDelay != tt.lockDelay {
			t.Errorf("%q: LockDelay = %v, want %v", tt.preset, cfg.Timing.LockDelay, tt.lockDelay)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset accepted unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Fatal("default difficulty must be disabled")
	}
	if got := dm.Speed(1.0, 50000, 0); got != 1.0 {
		t.Errorf("disabled Speed = %v, want 1.0", got)
	}

	dm.SetEnabled(true)
	if got := dm.Level(0, 0); got != 0.0 {
		t.Errorf("Level at score 0 = %v, want 0", got)
	}
	if got := dm.Level(10000, 0); got != 0.5 {
		t.Errorf("Level at half way = %v, want 0.5", got)
	}
	if got := dm.Level(99999, 0); got != 1.0 {
		t.Errorf("Level past max = %v, want 1.0", got)
	}
	if got := dm.Speed(1.0, 20000, 0); got != 5.0 {
		t.Errorf("Speed at max = %v, want 5.0", got)
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level with initial 0.5 = %v, want 0.5", got)
	}
	dm.SetInitialLevel(3)
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("initial level must clamp to 1.0, got %v", got)
	}
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(10000, 50); got != 0.5 {
		t.Errorf("time Level = %v, want 0.5", got)
	}

	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).IsEnabled() {
		t.Error("progression type none must disable")
	}
}
