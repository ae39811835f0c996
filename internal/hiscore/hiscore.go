// Package hiscore persists the single best Breakout score.
package hiscore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrCorrupt is returned by a Backend whose stored value is not an integer.
var ErrCorrupt = errors.New("hiscore: corrupt save")

// Backend stores one integer.
type Backend interface {
	ReadScore() (int, error)
	WriteScore(score int) error
}

// File is a Backend over a small text file holding one decimal integer.
type File struct {
	Path string
}

// NewFile returns a File backend. A leading "~" is expanded to the home directory.
func NewFile(path string) *File {
	return &File{Path: expandHome(path)}
}

// ReadScore reads the stored integer. A missing file yields an error
// wrapping os.ErrNotExist; unparsable content yields ErrCorrupt.
func (f *File) ReadScore() (int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0, fmt.Errorf("hiscore: read %s: %w", f.Path, err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, ErrCorrupt
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, fields[0])
	}
	return n, nil
}

// WriteScore replaces the file contents with score, creating parent directories.
func (f *File) WriteScore(score int) error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("hiscore: create dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("hiscore: write %s: %w", f.Path, err)
	}
	return nil
}

// Memory is an in-process Backend, used by tests and the SSH server.
type Memory struct {
	Score  int
	Writes int
	Err    error
}

// ReadScore returns the stored score or the configured error.
func (m *Memory) ReadScore() (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Score, nil
}

// WriteScore stores score.
func (m *Memory) WriteScore(score int) error {
	m.Score = score
	m.Writes++
	m.Err = nil
	return nil
}

// Keeper loads, caches and conditionally saves the high score.
// Scores are kept within [0, max].
type Keeper struct {
	backend Backend
	max     int
	best    int
	logger  *log.Logger
}

// NewKeeper creates a keeper. A nil logger discards warnings.
func NewKeeper(b Backend, max int, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{backend: b, max: max, logger: logger}
}

// Load reads the stored score. A missing or corrupt save is reset to 0 and
// written back; an out-of-range value is treated as 0.
func (k *Keeper) Load() int {
	n, err := k.backend.ReadScore()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			k.logger.Warn("unreadable high score, resetting", "err", err)
		}
		if werr := k.backend.WriteScore(0); werr != nil {
			k.logger.Warn("could not initialise save file", "err", werr)
		}
		k.best = 0
		return 0
	}
	if n < 0 || n > k.max {
		k.logger.Warn("invalid high score, resetting to 0", "value", n, "max", k.max)
		n = 0
	}
	k.best = n
	return n
}

// Best returns the cached high score.
func (k *Keeper) Best() int {
	return k.best
}

// Max returns the largest storable score.
func (k *Keeper) Max() int {
	return k.max
}

// SaveIfBetter persists score when it is at least the cached best.
// Out-of-range scores are clamped first. It reports whether score is now the
// stored best; the cache is refreshed when the backend holds a higher one.
func (k *Keeper) SaveIfBetter(score int) (bool, error) {
	if score > k.max {
		k.logger.Warn("score above maximum, clamping", "score", score, "max", k.max)
		score = k.max
	}
	if score < 0 {
		k.logger.Warn("negative score, clamping", "score", score)
		score = 0
	}
	if score < k.best {
		return false, nil
	}
	if err := k.backend.WriteScore(score); err != nil {
		return false, err
	}
	k.best = score
	// A shared backend may already hold a higher score from another keeper.
	if n, err := k.backend.ReadScore(); err == nil && n > score && n <= k.max {
		k.best = n
		return false, nil
	}
	return true, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
