package window

import (
	"image/color"

	"github.com/vovakirdan/flappy/internal/core"
)

// palette maps core.Color to window colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:    {R: 255, G: 255, B: 255, A: 255},
	core.ColorSky:        {R: 135, G: 206, B: 235, A: 255},
	core.ColorGround:     {R: 34, G: 139, B: 34, A: 255},
	core.ColorGroundEdge: {R: 0, G: 100, B: 0, A: 255},
	core.ColorPipe:       {R: 34, G: 139, B: 34, A: 255},
	core.ColorPipeEdge:   {R: 0, G: 100, B: 0, A: 255},
	core.ColorBird:       {R: 255, G: 215, B: 0, A: 255},
	core.ColorBeak:       {R: 220, G: 20, B: 60, A: 255},
	core.ColorText:       {R: 255, G: 255, B: 255, A: 255},
	core.ColorTextShadow: {R: 0, G: 0, B: 0, A: 160},
}

var (
	eyeWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	eyePupil = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
