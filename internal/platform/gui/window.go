//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/hud"
)

var face = basicfont.Face7x13

// Window adapts a breakout game to the ebiten.Game interface.
type Window struct {
	game   *breakout.Game
	opts   Options
	driver *core.FixedStep
	labels *hud.Cache[*ebiten.Image]
	input  core.InputFrame
	rec    runRecorder
}

func newWindow(game *breakout.Game, cfg core.RuntimeConfig, opts Options) *Window {
	cfg = cfg.WithDefaults()
	w := &Window{
		game:   game,
		opts:   opts,
		driver: core.NewFixedStep(cfg.TickRate, cfg.MaxSteps),
		labels: hud.NewCache(renderLabel),
		input:  core.NewInputFrame(),
		rec: runRecorder{
			store:   opts.Store,
			logger:  opts.Logger,
			gameID:  game.ID(),
			started: opts.Clock.Now(),
		},
	}
	game.Reset(cfg)
	game.AddSink(hud.SinkFunc(func(f hud.Field, s string) {
		w.labels.Refresh(f, s)
	}))
	return w
}

// renderLabel pre-renders one HUD text.
func renderLabel(_ hud.Field, s string) *ebiten.Image {
	b := text.BoundString(face, s)
	img := ebiten.NewImage(core.Max(b.Dx(), 1)+2, face.Metrics().Height.Ceil()+2)
	text.Draw(img, s, face, 1-b.Min.X, face.Metrics().Ascent.Ceil()+1, TextColor)
	return img
}

type keyIntent struct {
	keys    []ebiten.Key
	on, off core.Action
}

var moveKeys = []keyIntent{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionMoveLeftOn, core.ActionMoveLeftOff},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionMoveRightOn, core.ActionMoveRightOff},
}

// pollKeys turns key-down and key-up edges into intents. A direction is
// released only once none of its keys is held.
func pollKeys(frame *core.InputFrame) {
	for _, k := range moveKeys {
		pressed, released := directionEdges(k.keys, inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased, ebiten.IsKeyPressed)
		if pressed {
			frame.Set(k.on)
		}
		if released {
			frame.Set(k.off)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		frame.Set(core.ActionLaunch)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
}

// Update polls input and advances the simulation by the elapsed wall time.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	pollKeys(&w.input)
	if !w.input.Empty() {
		w.game.Handle(w.input)
		w.input.Clear()
	}

	now := w.opts.Clock.Now()
	w.driver.Frame(now, w.game)
	w.rec.observe(w.game.State(), w.game.Won(), now)
	return nil
}

// Draw renders the current game state.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	snap := w.game.Snapshot()
	s := w.opts.Scale

	for _, f := range hud.Fields {
		item := w.labels.Item(f)
		if !item.Valid {
			continue
		}
		h := float64(item.Value.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(f.Anchor()*snap.Field.W*s+8, (snap.Field.Hotbar*s-h)/2)
		screen.DrawImage(item.Value, op)
	}

	for _, b := range snap.Blocks {
		if b.Alive {
			fillRect(screen, b.Rect, s, RGBA(b.Color))
		}
	}
	fillRect(screen, snap.Ball, s, BallColor)
	fillRect(screen, snap.Paddle, s, RGBA(snap.PaddleColor))

	switch {
	case snap.Status == breakout.StatusGameOver && w.game.Won():
		w.drawCentered(screen, "YOU WIN!  R to play again")
	case snap.Status == breakout.StatusGameOver:
		w.drawCentered(screen, fmt.Sprintf("GAME OVER  %d points  R to retry", snap.Score))
	case snap.Paused:
		w.drawCentered(screen, "PAUSED")
	case snap.Status == breakout.StatusResetRound:
		w.drawCentered(screen, "SPACE to launch")
	}
}

func fillRect(dst *ebiten.Image, r core.RectF, s float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X*s), float32(r.Y*s), float32(r.W*s), float32(r.H*s), c, false)
}

func (w *Window) drawCentered(screen *ebiten.Image, msg string) {
	b := text.BoundString(face, msg)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	text.Draw(screen, msg, face, (sw-b.Dx())/2, sh*2/3, TextColor)
}

// Layout returns the logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	f := w.game.Field()
	return int(f.W * w.opts.Scale), int(f.H * w.opts.Scale)
}

// Run opens a window and plays game until it is closed.
func Run(game *breakout.Game, cfg core.RuntimeConfig, opts Options) error {
	opts = opts.withDefaults()
	w := newWindow(game, cfg, opts)

	width, height := w.Layout(0, 0)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(cfg.WithDefaults().FrameRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
