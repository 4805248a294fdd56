package flappy

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakLevel     = '▶'
	BeakUp        = '↗'
	BeakDown      = '↘'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▒'
	GroundEdge    = '═'
)

// Screen text, shared by every presentation layer.
const (
	TitleText   = "Flappy Bird"
	StartHint   = "Press SPACE or Click to Start"
	GameOver    = "Game Over!"
	RestartHint = "Press SPACE or Click to Restart"
)

// Decorative layout in world pixels. None of it takes part in collisions.
const (
	GroundHeight = 50 // Strip drawn along the bottom of the screen
	ScoreY       = 50 // Vertical position of the score
	CapOverhang  = 5  // How far a pipe cap sticks out on each side
	CapHeight    = 20
	beakTilt     = 10 // Tilt in degrees beyond which the beak points up/down
)

// FinalScoreText returns the score line of the game over screen.
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// viewport maps world pixels to screen cells.
type viewport struct {
	cols, rows     float64 // Screen size in cells
	worldW, worldH float64 // World size in pixels
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.cols / v.worldW)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.rows / v.worldH)) }

// colEnd returns the exclusive end column of a span, at least one cell past start.
func (v viewport) colEnd(x float64, start int) int {
	return core.Max(int(math.Ceil(x*v.cols/v.worldW)), start+1)
}

// Render draws a snapshot into dst, scaling the world to the screen size.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.ScreenW <= 0 || snap.ScreenH <= 0 {
		return
	}

	v := viewport{
		cols:   float64(dst.Width()),
		rows:   float64(dst.Height()),
		worldW: float64(snap.ScreenW),
		worldH: float64(snap.ScreenH),
	}

	drawGround(dst, v, snap.ScreenH)
	for _, p := range snap.Pipes {
		drawPipe(dst, v, p)
	}
	drawBird(dst, v, snap.Bird)

	scoreRow := core.Clamp(v.row(ScoreY), 0, dst.Height()-1)
	dst.DrawTextCentered(scoreRow, strconv.Itoa(snap.Score), core.ColorText)

	switch snap.State {
	case StateStart:
		drawCenteredMessage(dst, TitleText, StartHint)
	case StateGameOver:
		drawCenteredMessage(dst, GameOver, FinalScoreText(snap.Score), RestartHint)
	}
}

// drawGround renders the ground strip with its top edge.
func drawGround(dst *core.Screen, v viewport, screenH int) {
	top := core.Clamp(v.row(float64(screenH-GroundHeight)), 0, dst.Height()-1)
	dst.DrawRect(core.NewRect(0, top, dst.Width(), dst.Height()-top), GroundChar, core.ColorGround)
	dst.DrawHLine(0, top, dst.Width(), GroundEdge, core.ColorGroundEdge)
}

// drawPipe renders both segments of a pipe with a cap on each gap edge.
func drawPipe(dst *core.Screen, v viewport, p Pipe) {
	x0 := v.col(p.X)
	x1 := v.colEnd(p.X+p.Width, x0)
	capX0 := v.col(p.X - CapOverhang)
	capX1 := v.colEnd(p.X+p.Width+CapOverhang, capX0)

	topEnd := v.row(p.TopY)
	if topEnd > 0 {
		dst.DrawRect(core.NewRect(x0, 0, x1-x0, topEnd), PipeChar, core.ColorPipe)
		dst.DrawHLine(capX0, topEnd-1, capX1-capX0, PipeCapTop, core.ColorPipeEdge)
	}

	bottomStart := v.row(p.BottomY)
	if bottomStart < dst.Height() {
		dst.DrawRect(core.NewRect(x0, bottomStart, x1-x0, dst.Height()-bottomStart), PipeChar, core.ColorPipe)
		dst.DrawHLine(capX0, bottomStart, capX1-capX0, PipeCapBottom, core.ColorPipeEdge)
	}
}

// drawBird renders the bird body on one row with the beak showing its tilt.
func drawBird(dst *core.Screen, v viewport, b BirdView) {
	row := v.row(b.Y)
	x0 := v.col(b.X - b.Radius)
	x1 := v.colEnd(b.X+b.Radius, x0)

	for x := x0; x < x1; x++ {
		dst.SetColored(x, row, BirdChar, core.ColorBird)
	}

	beak := BeakLevel
	switch {
	case b.Tilt > beakTilt:
		beak = BeakUp
	case b.Tilt < -beakTilt:
		beak = BeakDown
	}
	dst.SetColored(x1, row, beak, core.ColorBeak)
}

// drawCenteredMessage draws a message box in the center of the screen,
// one blank row between lines.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, utf8.RuneCountInString(l))
	}

	boxW := longest + 4
	boxH := 2*len(lines) + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+2*i, l, core.ColorText)
	}
}
