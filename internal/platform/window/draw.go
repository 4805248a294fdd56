package window

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

const (
	outline    = 3 // Pipe outline width
	edgeHeight = 5 // Darker strip on top of the ground
	eyeOffsetX = 8 // Eye position relative to the bird centre
	eyeOffsetY = -5
	beakLength = 10
	lineGap    = 30 // Vertical distance between message lines
	boxPadding = 16
)

// draw renders a snapshot in world coordinates.
func draw(dst *ebiten.Image, snap flappy.Snapshot) {
	w, h := float32(snap.ScreenW), float32(snap.ScreenH)

	dst.Fill(rgba(core.ColorSky))

	for _, p := range snap.Pipes {
		drawPipe(dst, p)
	}

	vector.DrawFilledRect(dst, 0, h-flappy.GroundHeight, w, flappy.GroundHeight, rgba(core.ColorGround), false)
	vector.DrawFilledRect(dst, 0, h-flappy.GroundHeight, w, edgeHeight, rgba(core.ColorGroundEdge), false)

	drawBird(dst, snap.Bird)

	drawText(dst, strconv.Itoa(snap.Score), snap.ScreenW/2, flappy.ScoreY)

	switch snap.State {
	case flappy.StateStart:
		drawMessage(dst, snap, flappy.TitleText, flappy.StartHint)
	case flappy.StateGameOver:
		drawMessage(dst, snap, flappy.GameOver, flappy.FinalScoreText(snap.Score), flappy.RestartHint)
	}
}

// drawPipe renders both segments with outlines and a cap on each gap edge.
func drawPipe(dst *ebiten.Image, p flappy.Pipe) {
	fill, edge := rgba(core.ColorPipe), rgba(core.ColorPipeEdge)
	x, pw := float32(p.X), float32(p.Width)
	capX, capW := x-flappy.CapOverhang, pw+2*flappy.CapOverhang

	top := float32(p.TopY)
	vector.DrawFilledRect(dst, x, 0, pw, top, fill, false)
	vector.StrokeRect(dst, x, 0, pw, top, outline, edge, false)
	vector.DrawFilledRect(dst, capX, top-flappy.CapHeight, capW, flappy.CapHeight, fill, false)
	vector.StrokeRect(dst, capX, top-flappy.CapHeight, capW, flappy.CapHeight, outline, edge, false)

	bottom, bh := float32(p.BottomY), float32(p.ScreenH-p.BottomY)
	vector.DrawFilledRect(dst, x, bottom, pw, bh, fill, false)
	vector.StrokeRect(dst, x, bottom, pw, bh, outline, edge, false)
	vector.DrawFilledRect(dst, capX, bottom, capW, flappy.CapHeight, fill, false)
	vector.StrokeRect(dst, capX, bottom, capW, flappy.CapHeight, outline, edge, false)
}

// drawBird renders the body, the eye and the beak. The beak is nudged up or
// down with the tilt.
func drawBird(dst *ebiten.Image, b flappy.BirdView) {
	x, y, r := float32(b.X), float32(b.Y), float32(b.Radius)

	vector.DrawFilledCircle(dst, x, y, r, rgba(core.ColorBird), true)
	vector.DrawFilledCircle(dst, x+eyeOffsetX, y+eyeOffsetY, 6, eyeWhite, true)
	vector.DrawFilledCircle(dst, x+eyeOffsetX+2, y+eyeOffsetY, 3, eyePupil, true)

	beakY := y - 3 - float32(b.Tilt)/10
	vector.DrawFilledRect(dst, x+r, beakY, beakLength, 6, rgba(core.ColorBeak), false)
}

// drawMessage renders centred lines on a translucent panel.
func drawMessage(dst *ebiten.Image, snap flappy.Snapshot, lines ...string) {
	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, len(l))
	}

	cx := snap.ScreenW / 2
	top := snap.ScreenH/2 - 50
	boxW := float32(longest*glyphW + 2*boxPadding)
	boxH := float32((len(lines)-1)*lineGap + glyphH + 2*boxPadding)

	vector.DrawFilledRect(dst, float32(cx)-boxW/2, float32(top-boxPadding), boxW, boxH, rgba(core.ColorTextShadow), false)
	for i, l := range lines {
		drawText(dst, l, cx, top+i*lineGap)
	}
}

// drawText prints s horizontally centred on cx.
func drawText(dst *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(dst, s, cx-len(s)*glyphW/2, y)
}
