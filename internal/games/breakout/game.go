// Package breakout implements single-player Breakout: a paddle, a ball and a
// grid of scored blocks, advanced with a fixed time step.
package breakout

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/hiscore"
	"github.com/vovakirdan/tui-breakout/internal/hud"
	"github.com/vovakirdan/tui-breakout/internal/physics"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Game owns the complete Breakout state for one player.
type Game struct {
	env    registry.Env
	logger *log.Logger

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	field   Field

	// Game objects
	paddle Paddle
	ball   Ball
	grid   Grid
	timer  Timer

	// Game state
	status   Status
	paused   bool
	lives    int
	maxLives int
	score    int
	ticks    uint64

	keeper *hiscore.Keeper

	// UI text; sinks are notified after the cache accepts a change.
	text  *hud.Cache[string]
	sinks []hud.Sink
}

// New creates a Breakout game. No I/O happens until Reset.
func New(env registry.Env) *Game {
	env = env.WithDefaults()
	return &Game{
		env:    env,
		logger: env.Logger,
		text:   hud.NewCache(func(_ hud.Field, text string) string { return text }),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a new game: loads config and the high score, rebuilds every
// entity and republishes all HUD fields.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(g.env.ConfigPath)
	switch {
	case errors.Is(err, config.ErrSkipped):
		g.logger.Warn("ignoring broken breakout config", "err", err)
	case err != nil:
		g.logger.Warn("using default breakout config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, g.env.Difficulty)
	g.cfg = cfg

	g.field = Field{W: cfg.Field.Width, H: cfg.Field.Height, Hotbar: cfg.Field.Hotbar}
	g.grid = NewGrid(cfg.Blocks, g.field.W, g.field.H, g.field.Hotbar)

	pw := g.field.W * cfg.Paddle.WidthRatio
	ph := g.field.H * cfg.Paddle.HeightRatio
	g.paddle = Paddle{
		Rect:  core.RectF{X: 0.5*g.field.W - 0.5*pw, Y: g.field.H - 2*ph, W: pw, H: ph},
		Color: PaddleColor,
		Speed: g.field.W * cfg.Paddle.SpeedRatio,
	}
	g.ball = Ball{
		Rect:  core.RectF{W: cfg.Ball.Size, H: cfg.Ball.Size},
		Speed: g.field.H * cfg.Ball.SpeedRatio,
	}
	g.ball.rest(g.paddle)

	g.status = StatusResetRound
	g.paused = false
	g.maxLives = cfg.Gameplay.Lives
	g.lives = g.maxLives
	g.score = 0
	g.ticks = 0
	g.timer = Timer{}

	backend := g.env.HighScores
	if backend == nil {
		backend = hiscore.NewFile(g.env.SavePath)
	}
	g.keeper = hiscore.NewKeeper(backend, g.grid.MaxScore(), g.logger)
	g.keeper.Load()

	g.text.Invalidate()
	g.publish()
}

// AddSink registers an extra HUD observer and sends it every field.
func (g *Game) AddSink(s hud.Sink) {
	g.sinks = append(g.sinks, s)
	for _, f := range hud.Fields {
		s.Refresh(f, g.text.Text(f))
	}
}

// HUDText returns the current text of a HUD field.
func (g *Game) HUDText(f hud.Field) string {
	return g.text.Text(f)
}

func (g *Game) hudValues() hud.Values {
	v := hud.Values{
		Lives:   g.lives,
		Score:   g.score,
		Minutes: g.timer.Minutes,
		Seconds: g.timer.Seconds,
	}
	if g.keeper != nil {
		v.HighScore = g.keeper.Best()
	}
	return v
}

// publish pushes changed HUD fields to the cache and every sink.
func (g *Game) publish() {
	for _, f := range g.text.Update(g.hudValues()) {
		for _, s := range g.sinks {
			s.Refresh(f, g.text.Text(f))
		}
	}
}

// Handle applies input intents. Releases are applied before presses so a
// release and a re-press in the same frame leave the direction held.
func (g *Game) Handle(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.status == StatusGameOver {
		g.Reset(g.runtime)
		return
	}
	if in.Has(core.ActionPause) && g.status != StatusGameOver {
		g.TogglePause()
	}

	if g.status != StatusGameOver {
		if in.Has(core.ActionMoveLeftOff) {
			g.paddle.MoveLeft = false
		}
		if in.Has(core.ActionMoveRightOff) {
			g.paddle.MoveRight = false
		}
		if in.Has(core.ActionMoveLeftOn) {
			g.paddle.MoveLeft = true
		}
		if in.Has(core.ActionMoveRightOn) {
			g.paddle.MoveRight = true
		}
	}

	if in.Has(core.ActionLaunch) && !g.paused {
		g.Launch()
	}
}

// Launch puts a resting ball into play. It is a no-op unless the round is
// waiting to start.
func (g *Game) Launch() {
	if g.status != StatusResetRound {
		return
	}
	if !g.paddle.Started {
		g.paddle.Started = true
		g.timer.Start(g.env.Clock.Now())
	}
	g.status = StatusInPlay
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if !g.paused && g.paddle.Started {
		g.timer.Last = g.env.Clock.Now()
	}
}

// Halted reports whether Advance does nothing.
func (g *Game) Halted() bool {
	return g.status == StatusGameOver || g.paused
}

// Advance runs one fixed tick of dt seconds.
func (g *Game) Advance(dt float64) {
	if g.Halted() {
		return
	}
	g.ticks++

	if g.paddle.Started {
		g.timer.Tick(g.env.Clock.Now())
	}
	g.updateBall(dt)
	g.paddle.move(dt, g.field)
	g.checkGameOver()
	g.publish()
}

func (g *Game) updateBall(dt float64) {
	if g.status != StatusInPlay {
		g.ball.rest(g.paddle)
		return
	}

	g.ball.VelX = physics.Nudge(g.ball.VelX, g.cfg.Ball.MinVelX)
	candidate := physics.Step(g.ball.Rect, g.ball.VelX, g.ball.VelY, g.ball.Speed, dt)
	ev := Resolve(candidate, g.paddle.Rect, &g.grid, g.field)
	g.apply(ev, candidate)
}

// apply commits candidate and updates velocities, lives and score for ev.
func (g *Game) apply(ev Event, candidate core.RectF) {
	switch ev.Kind {
	case EventWallX:
		g.ball.VelX = -g.ball.VelX
	case EventWallY:
		g.ball.VelY = -g.ball.VelY
	case EventPaddleDrop:
		g.lives--
		g.status = StatusResetRound
	case EventPaddleHit:
		g.ball.VelX = physics.PaddleBounce(candidate, g.paddle.Rect, g.cfg.Bounce.PaddleDivisor)
		g.ball.VelY = -1
	case EventBlockHit:
		g.score += g.grid.Kill(ev.Block)
		g.ball.VelY = -g.ball.VelY
		g.ball.VelX = physics.ShallowAngle(g.ball.VelX, g.cfg.Bounce.BlockAngle)
	}
	g.ball.Rect = candidate
}

// checkGameOver ends the game when the grid is cleared or no lives remain.
// Clearing the grid takes precedence.
func (g *Game) checkGameOver() {
	switch {
	case g.grid.Alive() <= 0:
		g.finish(WinColor)
	case g.lives <= 0:
		g.finish(LoseColor)
	}
}

func (g *Game) finish(color core.Color) {
	g.status = StatusGameOver
	g.paddle.Color = color
	g.paddle.MoveLeft, g.paddle.MoveRight = false, false

	saved, err := g.keeper.SaveIfBetter(g.score)
	if err != nil {
		g.logger.Warn("could not save high score", "err", err)
		return
	}
	if saved {
		g.logger.Info("high score saved", "score", g.keeper.Best())
	}
}

// Won reports whether the game ended by clearing the grid.
func (g *Game) Won() bool {
	return g.status == StatusGameOver && g.grid.Alive() == 0
}

// Status returns the round state.
func (g *Game) Status() Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
		Paused:   g.paused,
	}
}

// Field returns the playfield dimensions.
func (g *Game) Field() Field {
	return g.field
}
