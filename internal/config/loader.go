package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultTetrisConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validateTetris(&cfg, customPath)
	}

	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "tetris.yaml")); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (TetrisConfig, bool) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := validateTetris(&cfg, path); err != nil {
		return cfg, false
	}
	return cfg, true
}

func validateTetris(cfg *TetrisConfig, path string) error {
	if cfg.Timing.FallInterval <= 0 {
		return fmt.Errorf("config %s: fall_interval must be positive, got %v", path, cfg.Timing.FallInterval)
	}
	if cfg.Timing.LockDelay < 0 {
		return fmt.Errorf("config %s: lock_delay must not be negative, got %v", path, cfg.Timing.LockDelay)
	}
	if cfg.Difficulty.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("config %s: speed_multiplier must not be negative, got %v", path, cfg.Difficulty.Scaling.SpeedMultiplier)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Lock delay follows the preset too
	switch preset {
	case DifficultyEasy:
		cfg.Timing.LockDelay = 750 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.LockDelay = 300 * time.Millisecond
	}
}
