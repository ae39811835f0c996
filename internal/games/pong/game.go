// Package pong is the single-paddle prototype that Breakout grew out of:
// a bottom paddle keeps a ball bouncing inside a walled field. There are no
// blocks and no persistence; each return scores a point.
package pong

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/physics"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

// Phase is the round state.
type Phase int

const (
	PhaseServe Phase = iota // ball held on the paddle
	PhasePlay
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseServe:
		return "serve"
	case PhasePlay:
		return "play"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// serveDelay is how long a held ball waits before serving itself.
const serveDelay = 1.0

// Game implements the Pong prototype.
type Game struct {
	env registry.Env

	// Paddle
	paddle      core.RectF
	paddleSpeed float64
	moveLeft    bool
	moveRight   bool

	// Ball
	ball   core.RectF
	ballVX float64
	ballVY float64

	// Game state
	phase     Phase
	paused    bool
	lives     int
	returns   int
	serveWait float64
	elapsed   float64 // seconds in play

	// Settings
	runtime    core.RuntimeConfig
	cfg        config.PongConfig
	difficulty config.Ramp
	rng        *rand.Rand
}

// New creates a new Pong game instance.
func New(env registry.Env) *Game {
	return &Game{env: env.WithDefaults()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong (prototype)"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadPong(g.env.ConfigPath)
	switch {
	case errors.Is(err, config.ErrSkipped):
		g.env.Logger.Warn("ignoring broken pong config", "err", err)
	case err != nil:
		g.env.Logger.Warn("using default pong config", "err", err)
		cfg = config.DefaultPongConfig()
	}
	config.ApplyPongPreset(&cfg, g.env.Difficulty)
	g.cfg = cfg
	g.difficulty = config.NewRamp(cfg.Difficulty)

	w, h := cfg.Field.Width, cfg.Field.Height
	pw, ph := w*cfg.Paddle.WidthRatio, h*cfg.Paddle.HeightRatio
	g.paddle = core.RectF{X: 0.5*w - 0.5*pw, Y: h - 2*ph, W: pw, H: ph}
	g.paddleSpeed = w * cfg.Paddle.SpeedRatio
	g.moveLeft, g.moveRight = false, false
	g.ball = core.RectF{W: cfg.Ball.Size, H: cfg.Ball.Size}

	g.lives = cfg.Gameplay.Lives
	g.returns = 0
	g.paused = false
	g.elapsed = 0
	g.startServe()
}

// startServe holds the ball on the paddle.
func (g *Game) startServe() {
	g.phase = PhaseServe
	g.serveWait = serveDelay
	g.holdBall()
}

func (g *Game) holdBall() {
	g.ball.X = g.paddle.MidX() - 0.5*g.ball.W
	g.ball.Y = g.paddle.Y - g.ball.H
	g.ballVX, g.ballVY = 0, -1
}

// serve releases the ball at a random shallow angle.
func (g *Game) serve() {
	if g.phase != PhaseServe {
		return
	}
	g.phase = PhasePlay
	g.ballVX = (g.rng.Float64() - 0.5) * 0.6 // -0.3 to 0.3
	g.ballVY = -1
}

// Handle applies input intents.
func (g *Game) Handle(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.phase == PhaseOver {
		g.Reset(g.runtime)
		return
	}
	if in.Has(core.ActionPause) && g.phase != PhaseOver {
		g.paused = !g.paused
	}
	if g.phase == PhaseOver {
		return
	}
	if in.Has(core.ActionMoveLeftOff) {
		g.moveLeft = false
	}
	if in.Has(core.ActionMoveRightOff) {
		g.moveRight = false
	}
	if in.Has(core.ActionMoveLeftOn) {
		g.moveLeft = true
	}
	if in.Has(core.ActionMoveRightOn) {
		g.moveRight = true
	}
	if in.Has(core.ActionLaunch) && !g.paused {
		g.serve()
	}
}

// Halted reports whether Advance does nothing.
func (g *Game) Halted() bool {
	return g.phase == PhaseOver || g.paused
}

// Advance runs one fixed tick.
func (g *Game) Advance(dt float64) {
	if g.Halted() {
		return
	}
	g.elapsed += dt

	switch g.phase {
	case PhaseServe:
		g.holdBall()
		g.serveWait -= dt
		if g.serveWait <= 0 {
			g.serve()
		}
	case PhasePlay:
		g.updateBall(dt)
	}
	g.updatePaddle(dt)
}

func (g *Game) updatePaddle(dt float64) {
	var v float64
	switch {
	case g.moveLeft && !g.moveRight:
		v = -1
	case g.moveRight && !g.moveLeft:
		v = 1
	}
	x := g.paddle.X + v*g.paddleSpeed*dt
	if x < 0 || x+g.paddle.W > g.cfg.Field.Width {
		return
	}
	g.paddle.X = x
}

// BallSpeed returns the current base ball speed, which grows with returns.
func (g *Game) BallSpeed() float64 {
	base := g.cfg.Field.Height * g.cfg.Ball.SpeedRatio
	return g.difficulty.Speed(base, g.returns, g.elapsed)
}

func (g *Game) updateBall(dt float64) {
	g.ballVX = physics.Nudge(g.ballVX, g.cfg.Ball.MinVelX)
	next := physics.Step(g.ball, g.ballVX, g.ballVY, g.BallSpeed(), dt)

	switch {
	case next.X <= 0 || next.Right() > g.cfg.Field.Width:
		g.ballVX = -g.ballVX
	case next.Y <= g.cfg.Field.Hotbar:
		g.ballVY = -g.ballVY
	case next.Y > g.paddle.Y+0.5*g.paddle.H:
		g.lives--
		if g.lives <= 0 {
			g.phase = PhaseOver
			return
		}
		g.startServe()
		return
	case next.Overlaps(g.paddle):
		g.ballVX = physics.PaddleBounce(next, g.paddle, g.cfg.Bounce.PaddleDivisor)
		g.ballVY = -1
		g.returns++
	}
	g.ball = next
}

// Render draws the game scaled onto the cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.cfg.Field.Width <= 0 || g.cfg.Field.Height <= 0 {
		return
	}
	sx := float64(dst.Width()) / g.cfg.Field.Width
	sy := float64(dst.Height()) / g.cfg.Field.Height

	dst.DrawTextColored(0, 0, fmt.Sprintf("Lives: %d", g.lives), core.ColorWhite)
	returns := fmt.Sprintf("Returns: %d", g.returns)
	dst.DrawTextColored(dst.Width()-len(returns), 0, returns, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	ball := g.ball.Cells(sx, sy)
	dst.SetColored(ball.X, ball.Y, BallChar, core.ColorWhite)
	paddle := g.paddle.Cells(sx, sy)
	dst.DrawRectColored(core.NewRect(paddle.X, paddle.Y, paddle.W, 1), PaddleChar, core.ColorCyan)

	switch {
	case g.phase == PhaseOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Returns: %d  |  Press R to restart", g.returns))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to serve")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.returns,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the round state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Register the game with the registry
func init() {
	registry.Register("pong", func(env registry.Env) registry.Game {
		return New(env)
	})
}
