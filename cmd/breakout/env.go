package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagTPS
	cfg.FrameRate = flagFPS
	cfg.MaxSteps = flagMaxSteps
	cfg.Seed = flagSeed

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// difficulty validates the --difficulty flag.
func difficulty() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// baseEnv builds the game environment from the global flags.
func baseEnv(logger *log.Logger) (registry.Env, error) {
	preset, err := difficulty()
	if err != nil {
		return registry.Env{}, err
	}
	return registry.Env{
		ConfigPath: flagConfig,
		Difficulty: preset,
		SavePath:   flagSavePath,
		Logger:     logger,
	}.WithDefaults(), nil
}

// fileLogger opens ~/.breakout/breakout.log for full-screen programs, where
// stderr would corrupt the display. It falls back to discarding logs.
func fileLogger() (*log.Logger, func()) {
	path := config.UserFile("breakout.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	//nolint:errcheck // Best-effort close
	return logger, func() { f.Close() }
}

// openStore opens the run history. A missing database is not fatal.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
