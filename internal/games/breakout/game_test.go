package breakout

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/hiscore"
	"github.com/vovakirdan/tui-breakout/internal/hud"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const dt = 1.0 / 120

func newTestGame(t *testing.T, best int) (*Game, *hiscore.Memory, *core.ManualClock) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	mem := &hiscore.Memory{Score: best}
	clock := core.NewManualClock()
	g := New(registry.Env{HighScores: mem, Clock: clock})
	g.Reset(core.DefaultConfig())
	return g, mem, clock
}

// place puts the ball in play at (x, y) with the given direction.
func place(g *Game, x, y, vx, vy float64) {
	g.Launch()
	g.ball.Rect.X, g.ball.Rect.Y = x, y
	g.ball.VelX, g.ball.VelY = vx, vy
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestResetInitialState(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	snap := g.Snapshot()

	if snap.Lives != 3 || snap.Score != 0 {
		t.Errorf("lives=%d score=%d, want 3, 0", snap.Lives, snap.Score)
	}
	if snap.AliveBlocks != 112 {
		t.Errorf("alive blocks = %d, want 112", snap.AliveBlocks)
	}
	if snap.Status != StatusResetRound {
		t.Errorf("status = %v, want reset_round", snap.Status)
	}
	if g.keeper.Max() != 448 {
		t.Errorf("max score = %d, want 448", g.keeper.Max())
	}
	if snap.PaddleColor != PaddleColor {
		t.Errorf("paddle color = %v", snap.PaddleColor)
	}
	if !approx(snap.Paddle.X, 393.6) || !approx(snap.Paddle.Y, 658) {
		t.Errorf("paddle at (%v, %v)", snap.Paddle.X, snap.Paddle.Y)
	}
	if !approx(snap.Ball.MidX(), snap.Paddle.MidX()) || !approx(snap.Ball.Bottom(), snap.Paddle.Y) {
		t.Errorf("ball not resting on paddle: %+v", snap.Ball)
	}
}

func TestGridLayout(t *testing.T) {
	g, _, _ := newTestGame(t, 0)

	first := g.grid.At(0, 0)
	if !approx(first.Rect.X, 20) || !approx(first.Rect.Y, 42) || !approx(first.Rect.W, 64) {
		t.Errorf("block (0,0) = %+v", first.Rect)
	}
	second := g.grid.At(1, 1)
	if !approx(second.Rect.X, 86) || !approx(second.Rect.Y, 42+700.0/3/8+2) {
		t.Errorf("block (1,1) = %+v", second.Rect)
	}

	wantPoints := []int{7, 7, 5, 5, 3, 3, 1, 1}
	wantColors := []core.Color{core.ColorRed, core.ColorRed, core.ColorPink, core.ColorPink,
		core.ColorGreen, core.ColorGreen, core.ColorYellow, core.ColorYellow}
	for row := 0; row < g.grid.Rows; row++ {
		b := g.grid.At(row, 5)
		if b.Points != wantPoints[row] || b.Color != wantColors[row] {
			t.Errorf("row %d: points=%d color=%v", row, b.Points, b.Color)
		}
	}

	last := g.grid.At(0, 13)
	if last.Rect.Right() > 960 {
		t.Errorf("last column leaves the field: %v", last.Rect.Right())
	}
}

func TestRestingBallFollowsPaddle(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionMoveRightOn)
	g.Handle(in)

	for range 10 {
		g.Advance(dt)
	}
	g.Advance(dt)
	if g.paddle.Rect.X <= 393.6 {
		t.Fatalf("paddle did not move right: %v", g.paddle.Rect.X)
	}
	// The ball is parked at the start of the tick, before the paddle moves.
	prev := g.paddle.Rect
	g.Advance(dt)
	if !approx(g.ball.Rect.MidX(), prev.MidX()) {
		t.Errorf("ball mid %v, paddle mid %v", g.ball.Rect.MidX(), prev.MidX())
	}
	if g.ball.VelX != 0 || g.ball.VelY != -1 {
		t.Errorf("resting velocity = (%v, %v)", g.ball.VelX, g.ball.VelY)
	}
}

func TestStraightLineTravel(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	place(g, 400, 400, 0.5, -1)
	g.Advance(dt)

	dyn := 350 * 1.5
	if !approx(g.ball.Rect.X, 400+0.5*dyn*dt) {
		t.Errorf("x = %v, want %v", g.ball.Rect.X, 400+0.5*dyn*dt)
	}
	if !approx(g.ball.Rect.Y, 400-dyn*dt) {
		t.Errorf("y = %v, want %v", g.ball.Rect.Y, 400-dyn*dt)
	}
	if g.ball.VelX != 0.5 || g.ball.VelY != -1 {
		t.Errorf("velocity changed: (%v, %v)", g.ball.VelX, g.ball.VelY)
	}
}

func TestZeroVelocityNudged(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	place(g, 400, 400, 0, -1)
	g.Advance(dt)
	if g.ball.VelX != 0.003 {
		t.Errorf("VelX = %v, want 0.003", g.ball.VelX)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
	}{
		{"left wall", 1, 400, -0.5, -1, 0.5, -1},
		{"right wall", 949, 400, 0.5, -1, -0.5, -1},
		{"top wall beats block", 400, 42, 0.5, -1, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newTestGame(t, 0)
			place(g, tt.x, tt.y, tt.vx, tt.vy)
			g.Advance(dt)
			if g.ball.VelX != tt.wantVX || g.ball.VelY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", g.ball.VelX, g.ball.VelY, tt.wantVX, tt.wantVY)
			}
			if g.grid.Alive() != 112 || g.score != 0 {
				t.Error("wall bounce must not touch blocks")
			}
		})
	}
}

func TestWallBounceKeepsCandidate(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	place(g, 1, 400, -0.5, -1)
	g.Advance(dt)
	if g.ball.Rect.X >= 0 {
		t.Errorf("x = %v, the candidate is committed without clamping", g.ball.Rect.X)
	}
}

func TestPaddleHit(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	p := g.paddle.Rect

	// Centre hit goes (almost) straight up.
	place(g, p.MidX()-5, 645, 0.003, 1)
	g.Advance(dt)
	if math.Abs(g.ball.VelX) > 1e-3 || g.ball.VelY != -1 {
		t.Errorf("centre hit velocity = (%v, %v)", g.ball.VelX, g.ball.VelY)
	}

	// Right edge hit deflects right by half the paddle width over the divisor.
	place(g, p.Right()-5, 645, 0.003, 1)
	g.status = StatusInPlay
	g.Advance(dt)
	if math.Abs(g.ball.VelX-0.864) > 1e-3 {
		t.Errorf("edge hit VelX = %v, want ~0.864", g.ball.VelX)
	}

	// Left edge deflects left.
	place(g, p.X-5, 645, 0.003, 1)
	g.Advance(dt)
	if math.Abs(g.ball.VelX+0.864) > 1e-3 {
		t.Errorf("left edge VelX = %v, want ~-0.864", g.ball.VelX)
	}
}

func TestBlockHit(t *testing.T) {
	tests := []struct {
		vx     float64
		wantVX float64
	}{
		{0.5, 0.3},
		{-0.5, -0.3},
	}
	for _, tt := range tests {
		g, _, _ := newTestGame(t, 0)
		place(g, 240, 41, tt.vx, 1)
		g.Advance(dt)

		if g.score != 7 {
			t.Errorf("score = %d, want 7", g.score)
		}
		if g.grid.Alive() != 111 {
			t.Errorf("alive = %d, want 111", g.grid.Alive())
		}
		if g.grid.At(0, 3).Alive {
			t.Error("block (0,3) should be destroyed")
		}
		if g.ball.VelY != -1 || g.ball.VelX != tt.wantVX {
			t.Errorf("velocity = (%v, %v), want (%v, -1)", g.ball.VelX, g.ball.VelY, tt.wantVX)
		}
	}
}

func TestFirstRedBlockScenario(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	g.Handle(in)
	if g.Status() != StatusInPlay {
		t.Fatalf("status after launch = %v", g.Status())
	}

	// Drop the ball into the gap between the hotbar and the top row.
	g.ball.Rect.X, g.ball.Rect.Y = 240, 41
	g.ball.VelX, g.ball.VelY = 0.2, 1
	for i := 0; i < 10 && g.score == 0; i++ {
		g.Advance(dt)
	}

	snap := g.Snapshot()
	if snap.Score != 7 || snap.AliveBlocks != 111 || snap.Status != StatusInPlay {
		t.Errorf("score=%d alive=%d status=%v, want 7, 111, in_play", snap.Score, snap.AliveBlocks, snap.Status)
	}
	if g.HUDText(hud.Score) != "Points: 7" {
		t.Errorf("HUD score = %q", g.HUDText(hud.Score))
	}
}

func dropBall(g *Game) {
	place(g, 100, 670, 0.5, 1)
	g.Advance(dt)
}

func TestLifeLoss(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	g.grid.Kill(0)
	g.score = 7

	dropBall(g)
	if g.lives != 2 || g.status != StatusResetRound {
		t.Fatalf("lives=%d status=%v, want 2, reset_round", g.lives, g.status)
	}
	if g.grid.Alive() != 111 || g.score != 7 {
		t.Error("a lost life keeps destroyed blocks and score")
	}

	g.Advance(dt)
	if !approx(g.ball.Rect.Bottom(), g.paddle.Rect.Y) {
		t.Error("ball should return to the paddle")
	}
}

func TestThreeMissesEndGame(t *testing.T) {
	g, mem, _ := newTestGame(t, 0)
	g.score = 12

	for range 3 {
		dropBall(g)
	}

	if g.Status() != StatusGameOver {
		t.Fatalf("status = %v, want game_over", g.Status())
	}
	if g.paddle.Color != LoseColor {
		t.Errorf("paddle color = %v, want lose color", g.paddle.Color)
	}
	if mem.Writes != 1 || mem.Score != 12 {
		t.Errorf("persistence writes=%d score=%d, want 1, 12", mem.Writes, mem.Score)
	}
	if g.HUDText(hud.HighScore) != "High Score: 012" {
		t.Errorf("HUD high score = %q", g.HUDText(hud.HighScore))
	}
}

func TestHighScoreOnlyWhenBetter(t *testing.T) {
	tests := []struct {
		name      string
		best      int
		score     int
		wantWrite bool
		wantSaved int
	}{
		{"below best", 50, 7, false, 50},
		{"ties best", 50, 50, true, 50},
		{"beats best", 50, 60, true, 60},
		{"clamped to max", 50, 1000, true, 448},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, mem, _ := newTestGame(t, tt.best)
			g.score = tt.score
			g.lives = 1
			dropBall(g)

			if g.Status() != StatusGameOver {
				t.Fatalf("status = %v", g.Status())
			}
			if (mem.Writes > 0) != tt.wantWrite {
				t.Errorf("writes = %d, want write=%v", mem.Writes, tt.wantWrite)
			}
			if mem.Score != tt.wantSaved {
				t.Errorf("stored = %d, want %d", mem.Score, tt.wantSaved)
			}
		})
	}
}

func TestClearingGridWinsTie(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	for i := range g.grid.Blocks {
		g.score += g.grid.Kill(i)
	}
	g.lives = 0
	g.checkGameOver()

	if !g.Won() || g.paddle.Color != WinColor {
		t.Errorf("won=%v color=%v, want a win", g.Won(), g.paddle.Color)
	}
	if g.score != 448 {
		t.Errorf("score = %d, want 448", g.score)
	}
}

func TestLastBlockWins(t *testing.T) {
	g, mem, _ := newTestGame(t, 0)
	for i := 1; i < len(g.grid.Blocks); i++ {
		g.score += g.grid.Kill(i)
	}
	place(g, 40, 41, 0.5, 1)
	g.Advance(dt)

	if g.Status() != StatusGameOver || g.paddle.Color != WinColor {
		t.Fatalf("status=%v color=%v", g.Status(), g.paddle.Color)
	}
	if mem.Score != 448 {
		t.Errorf("saved %d, want 448", mem.Score)
	}
}

func TestGameOverIsSticky(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	g.lives = 1
	dropBall(g)
	snap := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	in.Set(core.ActionMoveLeftOn)
	g.Handle(in)
	for range 50 {
		g.Advance(dt)
	}

	after := g.Snapshot()
	if after.Hash() != snap.Hash() {
		t.Error("Advance must be a no-op once the game is over")
	}
	if g.paddle.MoveLeft {
		t.Error("move intents are ignored while over")
	}
	if !g.Halted() {
		t.Error("Halted() = false after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	g.grid.Kill(5)
	g.lives = 1
	dropBall(g)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Handle(in)

	snap := g.Snapshot()
	if snap.Status != StatusResetRound || snap.Lives != 3 || snap.AliveBlocks != 112 {
		t.Errorf("restart gave status=%v lives=%d alive=%d", snap.Status, snap.Lives, snap.AliveBlocks)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	g.grid.Kill(5)
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Handle(in)
	if g.grid.Alive() != 111 {
		t.Error("restart must only apply after game over")
	}
}

func TestPause(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	place(g, 400, 400, 0.5, -1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Handle(in)
	if !g.Halted() || !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.ball.Rect
	g.Advance(dt)
	if g.ball.Rect != before {
		t.Error("paused game moved")
	}

	g.Handle(in)
	g.Advance(dt)
	if g.ball.Rect == before {
		t.Error("resumed game did not move")
	}
}

func TestPaddleStaysInField(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionMoveLeftOn)
	g.Handle(in)

	for range 600 {
		g.Advance(dt)
		if g.paddle.Rect.X < 0 {
			t.Fatalf("paddle left the field: %v", g.paddle.Rect.X)
		}
	}
	// The last legal position is kept rather than clamped to zero.
	if g.paddle.Rect.X >= 480*dt {
		t.Errorf("paddle stopped too early at %v", g.paddle.Rect.X)
	}

	off := core.NewInputFrame()
	off.Set(core.ActionMoveLeftOff)
	g.Handle(off)
	x := g.paddle.Rect.X
	g.Advance(dt)
	if g.paddle.Rect.X != x {
		t.Error("paddle moved after release")
	}
}

func TestOpposingIntentsCancel(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	in := core.NewInputFrame()
	in.Set(core.ActionMoveLeftOn)
	in.Set(core.ActionMoveRightOn)
	g.Handle(in)
	x := g.paddle.Rect.X
	g.Advance(dt)
	if g.paddle.Rect.X != x || g.paddle.Velocity != 0 {
		t.Error("both directions held should cancel")
	}
}

func TestTimerCountsAfterLaunch(t *testing.T) {
	g, _, clock := newTestGame(t, 0)

	clock.Advance(5 * time.Second)
	g.Advance(dt)
	if g.HUDText(hud.Time) != "00:00" {
		t.Errorf("timer ran before launch: %q", g.HUDText(hud.Time))
	}

	g.Launch()
	g.ball.Rect.Y = 400
	for range 61 {
		clock.Advance(time.Second)
		g.Advance(dt)
		g.ball.Rect.Y = 400
	}
	if g.HUDText(hud.Time) != "01:01" {
		t.Errorf("timer = %q, want 01:01", g.HUDText(hud.Time))
	}
}

type countingSink map[hud.Field]int

func (c countingSink) Refresh(f hud.Field, _ string) { c[f]++ }

func TestHUDRefreshedOnlyOnChange(t *testing.T) {
	g, _, clock := newTestGame(t, 0)
	sink := countingSink{}
	g.AddSink(sink)
	for _, f := range hud.Fields {
		if sink[f] != 1 {
			t.Fatalf("field %v refreshed %d times on attach", f, sink[f])
		}
	}

	for range 20 {
		g.Advance(dt)
	}
	for _, f := range hud.Fields {
		if sink[f] != 1 {
			t.Errorf("field %v refreshed without a change", f)
		}
	}

	place(g, 240, 41, 0.5, 1)
	clock.Advance(2 * time.Second)
	g.Advance(dt)
	if sink[hud.Score] != 2 {
		t.Errorf("score refreshed %d times, want 2", sink[hud.Score])
	}
	if sink[hud.Lives] != 1 || sink[hud.HighScore] != 1 {
		t.Errorf("unchanged fields refreshed: %v", sink)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _, clock := newTestGame(t, 0)
		for i := range 3000 {
			in := core.NewInputFrame()
			switch {
			case i == 10:
				in.Set(core.ActionLaunch)
			case i%40 == 0:
				in.Set(core.ActionMoveRightOn)
				in.Set(core.ActionMoveLeftOff)
			case i%40 == 20:
				in.Set(core.ActionMoveLeftOn)
				in.Set(core.ActionMoveRightOff)
			case i%200 == 150:
				in.Set(core.ActionLaunch)
			}
			g.Handle(in)
			clock.Advance(time.Second / 120)
			g.Advance(dt)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("runs diverged: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	snap := g.Snapshot()
	snap.Blocks[0].Alive = false
	if !g.grid.Blocks[0].Alive {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestRender(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	for _, want := range []string{"Lives: 3", "Points: 0", "00:00", "High Score: 000"} {
		if !strings.Contains(top, want) {
			t.Errorf("HUD row %q missing %q", top, want)
		}
	}
	if !strings.Contains(screen.String(), "Press SPACE to launch") {
		t.Error("launch hint missing")
	}

	cell := screen.GetCell(2, 1)
	if cell.Rune != BlockChar || cell.Color != core.ColorRed {
		t.Errorf("top row cell = %+v, want red block", cell)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("breakout") {
		t.Fatal("breakout not registered")
	}
}
