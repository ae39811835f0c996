package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{12, 448, 97} {
		if _, err := store.SaveRun("tui_fake", score, storage.OutcomeLose, time.Minute); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 448 {
		t.Fatalf("runs = %+v, want best first", m.runs)
	}
	if rows := m.table.Rows(); len(rows) != 3 || rows[0][1] != "448" || rows[0][3] != "01:00" {
		t.Errorf("rows = %v", rows)
	}
	if line := m.statsLine(); !strings.Contains(line, "3 runs") || !strings.Contains(line, "best 448") {
		t.Errorf("stats = %q", line)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(ScoreboardModel)
	if !m.recent || len(m.table.Rows()[0]) != 6 {
		t.Errorf("recent view should add a game column")
	}
	if m.table.Rows()[0][1] != "tui_fake" || m.table.Rows()[0][2] != "97" {
		t.Errorf("recent rows = %v, want newest first", m.table.Rows())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No scores database") {
		t.Error("missing store should be reported")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{61 * time.Second, "01:01"},
		{99*time.Minute + 59*time.Second, "99:59"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
