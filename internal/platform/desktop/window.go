// Package desktop runs Ghost Flap in a native window through Ebitengine.
// The window's logical size is the playfield, so the simulation never sees
// the window being resized.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/platform/fx"
	"github.com/vovakirdan/ghost-flap/internal/storage"
)

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorSky       = color.RGBA{R: 24, G: 18, B: 40, A: 255}
	colorGround    = color.RGBA{R: 60, G: 48, B: 72, A: 255}
	colorHand      = color.RGBA{R: 98, G: 168, B: 84, A: 255}
	colorHandDim   = color.RGBA{R: 62, G: 110, B: 56, A: 255}
	colorGhost     = color.RGBA{R: 230, G: 230, B: 245, A: 200}
	colorCat       = color.RGBA{R: 245, G: 160, B: 60, A: 255}
	colorCatDead   = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	colorBannerBox = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// Options configures the desktop window.
type Options struct {
	Config        config.FlappyConfig // Must be valid
	Mode          config.Mode
	Seed          int64 // Zero picks a time-based seed
	TickRate      int
	Scale         float64 // Window size relative to the playfield
	Session       string
	GameOverImage string // Optional decoration shown after a game over
	Logger        *log.Logger
}

// Window implements ebiten.Game around one flappy.Game.
type Window struct {
	game     *flappy.Game
	store    *storage.Store
	opts     Options
	logger   *log.Logger
	banner   fx.Banner
	gameOver *ebiten.Image
	notice   string
	best     int
}

// NewWindow creates a window. store may be nil.
func NewWindow(store *storage.Store, opts Options) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.TickRate = core.TickRate(opts.TickRate)
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Session == "" {
		opts.Session = "local"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Window{
		game:   flappy.New(opts.Config, opts.Seed),
		store:  store,
		opts:   opts,
		logger: logger,
	}

	if opts.GameOverImage != "" {
		img, err := loadImage(opts.GameOverImage)
		if err != nil {
			logger.Warn("game-over image unavailable", "error", err)
			w.notice = "game-over image unavailable"
		} else {
			w.gameOver = img
		}
	}

	if store != nil {
		if best, err := store.Best(opts.Session); err == nil {
			w.best = best
		}
	}

	return w
}

// readInput polls the keyboard and mouse for this tick.
func (w *Window) readInput() (core.InputFrame, bool) {
	in := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return in, true
	}

	flap := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if flap {
		for _, a := range flappy.FlapActions(w.game.State()) {
			in.Set(a)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}

	return in, false
}

// Update runs one simulation step per Ebitengine tick.
func (w *Window) Update() error {
	in, quit := w.readInput()
	if quit {
		return ebiten.Termination
	}

	result := w.game.Step(in)
	switch {
	case result.GameOver:
		w.recordRun()
		w.banner.Drop()
	case result.State == flappy.StateRunning && w.banner.Animating():
		w.banner.Reset()
	}
	w.banner.Update(1 / float32(w.opts.TickRate))

	return nil
}

func (w *Window) recordRun() {
	snap := w.game.Snapshot()
	w.best = core.Max(w.best, snap.FinalScore)
	w.logger.Info("game over", "score", snap.FinalScore, "cause", snap.Cause.String(), "frames", snap.Frame)

	if w.store == nil {
		return
	}
	mode := string(w.opts.Mode)
	if mode == "" {
		mode = "config"
	}
	if _, err := w.store.SaveRun(storage.Run{
		Session: w.opts.Session,
		Mode:    mode,
		Score:   snap.FinalScore,
		Frames:  int64(snap.Frame),
		Cause:   snap.Cause.String(),
	}); err != nil {
		w.logger.Warn("could not record run", "error", err)
	}
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(colorSky)

	for _, p := range snap.Pairs {
		c := colorHand
		if p.Scored {
			c = colorHandDim
		}
		fillRect(screen, p.Top, c)
		fillRect(screen, p.Bottom, c)
	}
	for _, h := range snap.Hazards {
		fillRect(screen, h.Rect, colorGhost)
	}

	cat := colorCat
	if !snap.Player.Alive {
		cat = colorCatDead
	}
	fillRect(screen, snap.Player.Rect, cat)

	vector.DrawFilledRect(screen, 0, float32(snap.FieldH)-2, float32(snap.FieldW), 2, colorGround, false)

	score := snap.Score
	if snap.State == flappy.StateGameOver {
		score = snap.FinalScore
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Best: %d", score, core.Max(w.best, score)), 8, 6)
	if w.notice != "" {
		ebitenutil.DebugPrintAt(screen, w.notice, 8, 22)
	}

	switch {
	case snap.State == flappy.StateNotStarted:
		w.drawBanner(screen, snap, 0, "GHOST FLAP", "SPACE / click to flap")
	case snap.State == flappy.StateGameOver:
		lift := w.banner.Lift(int(snap.FieldH / 3))
		w.drawGameOverImage(screen, snap, lift)
		w.drawBanner(screen, snap, lift,
			"GAME OVER",
			fmt.Sprintf("Score: %d - %s", snap.FinalScore, snap.Cause),
			"SPACE or R to restart",
		)
	case snap.Paused:
		w.drawBanner(screen, snap, 0, "PAUSED", "Press P to resume")
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawBanner draws centered lines on a translucent box, lifted by lift pixels.
func (w *Window) drawBanner(screen *ebiten.Image, snap flappy.Snapshot, lift int, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l)*glyphW)
	}
	boxW := width + 24
	boxH := len(lines)*glyphH + 16
	boxX := (int(snap.FieldW) - boxW) / 2
	boxY := (int(snap.FieldH)-boxH)/2 - lift

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), colorBannerBox, false)
	for i, l := range lines {
		x := (int(snap.FieldW) - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, boxY+8+i*glyphH)
	}
}

// drawGameOverImage places the decoration above the banner, scaled to a
// third of the playfield width.
func (w *Window) drawGameOverImage(screen *ebiten.Image, snap flappy.Snapshot, lift int) {
	if w.gameOver == nil {
		return
	}
	b := w.gameOver.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	scale := snap.FieldW / 3 / float64(b.Dx())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(snap.FieldW-float64(b.Dx())*scale)/2,
		snap.FieldH/2-float64(b.Dy())*scale-80-float64(lift),
	)
	screen.DrawImage(w.gameOver, op)
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := w.game.Config()
	return cfg.Playfield.Width, cfg.Playfield.Height
}

// Run opens the window and blocks until it is closed.
func Run(store *storage.Store, opts Options) error {
	w := NewWindow(store, opts)
	cfg := w.game.Config()

	ebiten.SetWindowTitle("Ghost Flap")
	ebiten.SetWindowSize(int(float64(cfg.Playfield.Width)*w.opts.Scale), int(float64(cfg.Playfield.Height)*w.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
