package core

// Color represents a foreground color for a screen cell.
// Adapters map each value to a terminal style or an RGBA colour.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorGroundEdge
	ColorPipe
	ColorPipeEdge
	ColorBird
	ColorBeak
	ColorText
	ColorTextShadow
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorGround:
		return "ground"
	case ColorGroundEdge:
		return "ground-edge"
	case ColorPipe:
		return "pipe"
	case ColorPipeEdge:
		return "pipe-edge"
	case ColorBird:
		return "bird"
	case ColorBeak:
		return "beak"
	case ColorText:
		return "text"
	case ColorTextShadow:
		return "text-shadow"
	default:
		return "unknown"
	}
}
