package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is created under the home directory for configs, saves, the run
// database, the host key and logs.
const AppDir = ".breakout"

// ErrSkipped marks a search-path config that could not be read or parsed.
// The returned config is still usable: it holds the next file in the lookup
// order, or the embedded defaults.
var ErrSkipped = errors.New("config file skipped")

// LoadBreakout reads the Breakout config. See loadInto for the lookup order.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	err := loadInto(&cfg, customPath, "breakout.yaml", defaultBreakoutYAML)
	return cfg, err
}

// LoadPong reads the Pong config. See loadInto for the lookup order.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	err := loadInto(&cfg, customPath, "pong.yaml", defaultPongYAML)
	return cfg, err
}

// loadInto overlays one YAML document on out, which already holds the
// defaults. An explicit path must exist and parse. Without one, the first
// usable file of ~/.breakout/configs/<name> and ./configs/<name> wins and
// the embedded copy is the fallback. Keys absent from the document keep
// their current values. Broken search-path files are reported as errors
// wrapping ErrSkipped while out still receives the fallback.
func loadInto[T any](out *T, customPath, name string, embedded []byte) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return nil
	}

	var skipped []error
	for _, path := range []string{UserConfigPath(name), filepath.Join("configs", name)} {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%w: %s: %w", ErrSkipped, path, err))
			continue
		}
		// Decode into a copy so a half-parsed file leaves no trace.
		tmp := *out
		if err := yaml.Unmarshal(data, &tmp); err != nil {
			skipped = append(skipped, fmt.Errorf("%w: %s: %w", ErrSkipped, path, err))
			continue
		}
		*out = tmp
		return errors.Join(skipped...)
	}
	// The embedded files are covered by tests; a failure leaves the defaults.
	tmp := *out
	if yaml.Unmarshal(embedded, &tmp) == nil {
		*out = tmp
	}
	return errors.Join(skipped...)
}

// UserFile is the path of name inside ~/.breakout, or name itself when the
// home directory is unknown.
func UserFile(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, AppDir, name)
}

// UserConfigPath is where a per-user override of a config file lives.
func UserConfigPath(name string) string {
	return UserFile(filepath.Join("configs", name))
}

// ErrExists is returned by WriteDefault when the target is already there.
var ErrExists = errors.New("config file already exists")

// WriteDefault copies the embedded config of gameID to path, creating parent
// directories. It refuses to replace an existing file unless force is set.
func WriteDefault(gameID, path string, force bool) error {
	data := DefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("config: no default config for %q", gameID)
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s: %w", path, ErrExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// ApplyBreakoutPreset trades lives and paddle width against ball speed.
// Breakout has no in-game ramp, so normal and fixed leave cfg alone.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.WidthRatio = 0.24
		cfg.Ball.SpeedRatio = 0.4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.WidthRatio = 0.13
		cfg.Ball.SpeedRatio = 0.65
	}
}

// ApplyPongPreset sets where the speed ramp starts, or switches it off for
// the fixed preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case "":
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
