package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestGameTable(t *testing.T) {
	games := []registry.GameInfo{{ID: "breakout", Title: "Breakout"}, {ID: "pong", Title: "Pong"}}
	stats := map[string]*storage.GameStats{
		"breakout": {GameID: "breakout", RunsCount: 3, HighScore: 1448, LastPlayed: time.Now().Add(-time.Hour)},
	}

	out := gameTable(games, stats)
	for _, want := range []string{"BEST", "Breakout", "1,448", "hour ago", "Pong", "never"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if out := gameTable(games, nil); strings.Count(out, "never") != 2 {
		t.Errorf("without stats every game should read never:\n%s", out)
	}
}
