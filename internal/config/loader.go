package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the tuning for gameID. Files are decoded over fallback(), so a
// file only needs the keys it changes.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> fallback.
// Only an unreadable or invalid customPath is an error.
func Load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if next, ok := decode(data, fallback); ok {
				return next, nil
			}
		}
	}

	if data := DefaultYAML(gameID); data != nil {
		if next, ok := decode(data, fallback); ok {
			return next, nil
		}
	}
	return cfg, nil
}

func decode[T any](data []byte, fallback func() T) (T, bool) {
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func LoadRunner(customPath string) (RunnerConfig, error) {
	return Load("runner", customPath, DefaultRunnerConfig)
}

func LoadFlappy(customPath string) (FlappyConfig, error) {
	return Load("flappy", customPath, DefaultFlappyConfig)
}

func LoadSpace(customPath string) (SpaceConfig, error) {
	return Load("space", customPath, DefaultSpaceConfig)
}

func LoadBrick(customPath string) (BrickConfig, error) {
	return Load("brick", customPath, DefaultBrickConfig)
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset sets the progression for a difficulty preset.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyBrickPreset also adjusts lives, paddle and ball for the preset.
func ApplyBrickPreset(cfg *BrickConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 15
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 24
	}
}
