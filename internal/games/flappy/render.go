package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ghost-flap/internal/core"
)

// Glyphs are the runes used to draw the game in a character grid.
type Glyphs struct {
	Player     rune
	PlayerDead rune
	Barrier    rune
	CapTop     rune // Last row of a top barrier
	CapBottom  rune // First row of a bottom barrier
	Hazard     rune
	Ground     rune
}

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Player:     '●',
		PlayerDead: '✕',
		Barrier:    '█',
		CapTop:     '▄',
		CapBottom:  '▀',
		Hazard:     '▓',
		Ground:     '═',
	}
}

// DrawOptions carries presentation state that the simulation does not own.
type DrawOptions struct {
	Glyphs       Glyphs
	Best         int    // Best score of the session, shown in the HUD
	Notice       string // One-line notice, e.g. a sprite loading failure
	BannerOffset int    // Rows the center banner is lifted above its resting place
}

// viewport maps playfield units to screen cells. Terminal cells are roughly
// twice as tall as wide, so the vertical scale is half the horizontal one.
type viewport struct {
	originX, originY int
	width, height    int // Size of the playfield in cells
	scaleX, scaleY   float64
}

func fitViewport(fieldW, fieldH float64, screenW, screenH int) viewport {
	availW := float64(screenW)
	availH := float64(screenH - 2) // HUD row and ground row
	if availH < 1 || availW < 1 || fieldW <= 0 || fieldH <= 0 {
		return viewport{}
	}

	s := math.Min(availW/fieldW, 2*availH/fieldH)
	v := viewport{
		scaleX: s,
		scaleY: s / 2,
		width:  int(fieldW * s),
		height: int(fieldH * s / 2),
	}
	v.originX = (screenW - v.width) / 2
	v.originY = 1 + (int(availH)-v.height)/2
	return v
}

// cells converts a rectangle to a clipped half-open cell range.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.scaleX))
	x1 = int(math.Ceil(r.Right() * v.scaleX))
	y0 = int(math.Floor(r.Y * v.scaleY))
	y1 = int(math.Ceil(r.Bottom() * v.scaleY))

	x0 = core.Clamp(x0, 0, v.width) + v.originX
	x1 = core.Clamp(x1, 0, v.width) + v.originX
	y0 = core.Clamp(y0, 0, v.height) + v.originY
	y1 = core.Clamp(y1, 0, v.height) + v.originY
	return x0, y0, x1, y1
}

// Draw renders a snapshot into the screen buffer. It reads nothing but the
// snapshot, so any frontend with a character grid can use it.
func Draw(dst *core.Screen, snap Snapshot, opts DrawOptions) {
	dst.Clear()
	glyphs := opts.Glyphs

	v := fitViewport(snap.FieldW, snap.FieldH, dst.Width(), dst.Height())

	// Playfield walls when the playfield is narrower than the screen
	if v.originX > 0 {
		for y := v.originY; y < v.originY+v.height; y++ {
			dst.SetColored(v.originX-1, y, '│', core.ColorGray)
			dst.SetColored(v.originX+v.width, y, '│', core.ColorGray)
		}
	}
	dst.DrawHLine(v.originX, v.originY+v.height, v.width, glyphs.Ground, core.ColorGray)

	for _, p := range snap.Pairs {
		drawPair(dst, v, p, glyphs)
	}

	for _, h := range snap.Hazards {
		x0, y0, x1, y1 := v.cells(h.Rect)
		dst.FillRect(x0, y0, x1-x0, y1-y0, glyphs.Hazard, core.ColorBrightWhite)
	}

	playerGlyph, playerColor := glyphs.Player, core.ColorYellow
	if !snap.Player.Alive {
		playerGlyph, playerColor = glyphs.PlayerDead, core.ColorBrightRed
	}
	x0, y0, x1, y1 := v.cells(snap.Player.Rect)
	dst.FillRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1), playerGlyph, playerColor)

	drawHUD(dst, snap, opts)

	switch {
	case snap.State == StateNotStarted:
		drawBanner(dst, opts.BannerOffset, core.ColorCyan,
			"GHOST FLAP",
			"SPACE / click to flap",
		)
	case snap.State == StateGameOver:
		drawBanner(dst, opts.BannerOffset, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d - %s", snap.FinalScore, snap.Cause),
			"SPACE or R to restart",
		)
	case snap.Paused:
		drawBanner(dst, 0, core.ColorWhite,
			"PAUSED",
			"Press P to resume",
		)
	}
}

func drawPair(dst *core.Screen, v viewport, p PairView, glyphs Glyphs) {
	color := core.ColorBrightGreen
	if p.Scored {
		color = core.ColorGreen
	}

	x0, y0, x1, y1 := v.cells(p.Top)
	dst.FillRect(x0, y0, x1-x0, y1-y0, glyphs.Barrier, color)
	if y1 > y0 {
		dst.DrawHLine(x0, y1-1, x1-x0, glyphs.CapTop, color)
	}

	x0, y0, x1, y1 = v.cells(p.Bottom)
	dst.FillRect(x0, y0, x1-x0, y1-y0, glyphs.Barrier, color)
	if y1 > y0 {
		dst.DrawHLine(x0, y0, x1-x0, glyphs.CapBottom, color)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, opts DrawOptions) {
	score := snap.Score
	if snap.State == StateGameOver {
		score = snap.FinalScore
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", score, core.Max(opts.Best, score)), core.ColorBrightWhite)

	if opts.Notice != "" {
		x := dst.Width() - len([]rune(opts.Notice)) - 1
		dst.DrawTextColored(core.Max(x, 0), 0, opts.Notice, core.ColorYellow)
	}
}

// drawBanner draws a message box in the center of the screen, lifted by
// offset rows.
func drawBanner(dst *core.Screen, offset int, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height()-boxH)/2 - offset

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i*2, l, c)
	}
}
