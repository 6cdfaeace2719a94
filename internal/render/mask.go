package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// ColorMask decides how modules are colored: a flat background plus a
// foreground pattern evaluated per pixel over the whole image.
type ColorMask interface {
	Background() RGB
	Foreground(width, height int) gg.Pattern
}

const (
	ModeSolid    = "solid"
	ModeGradient = "gradient"
)

const (
	GradientRadial     = "radial"
	GradientSquare     = "square"
	GradientHorizontal = "horizontal"
	GradientVertical   = "vertical"
)

// SolidMask paints every module with Fill.
type SolidMask struct {
	Back, Fill RGB
}

func (m SolidMask) Background() RGB { return m.Back }

func (m SolidMask) Foreground(_, _ int) gg.Pattern {
	return gg.NewSolidPattern(m.Fill.RGBA())
}

// RadialGradientMask fades from Center in the middle of the image to Edge at
// its corners.
type RadialGradientMask struct {
	Back, Center, Edge RGB
}

func (m RadialGradientMask) Background() RGB { return m.Back }

func (m RadialGradientMask) Foreground(width, height int) gg.Pattern {
	cx, cy := float64(width)/2, float64(height)/2
	g := gg.NewRadialGradient(cx, cy, 0, cx, cy, math.Hypot(cx, cy))
	g.AddColorStop(0, m.Center.RGBA())
	g.AddColorStop(1, m.Edge.RGBA())
	return g
}

// SquareGradientMask fades from Center to Edge by Chebyshev distance, so
// the iso-color lines are concentric squares.
type SquareGradientMask struct {
	Back, Center, Edge RGB
}

func (m SquareGradientMask) Background() RGB { return m.Back }

func (m SquareGradientMask) Foreground(width, height int) gg.Pattern {
	return &squareGradient{
		cx:   float64(width) / 2,
		cy:   float64(height) / 2,
		from: m.Center,
		to:   m.Edge,
	}
}

// HorizontalGradientMask fades from Left to Right.
type HorizontalGradientMask struct {
	Back, Left, Right RGB
}

func (m HorizontalGradientMask) Background() RGB { return m.Back }

func (m HorizontalGradientMask) Foreground(width, _ int) gg.Pattern {
	g := gg.NewLinearGradient(0, 0, float64(width), 0)
	g.AddColorStop(0, m.Left.RGBA())
	g.AddColorStop(1, m.Right.RGBA())
	return g
}

// VerticalGradientMask fades from Top to Bottom.
type VerticalGradientMask struct {
	Back, Top, Bottom RGB
}

func (m VerticalGradientMask) Background() RGB { return m.Back }

func (m VerticalGradientMask) Foreground(_, height int) gg.Pattern {
	g := gg.NewLinearGradient(0, 0, 0, float64(height))
	g.AddColorStop(0, m.Top.RGBA())
	g.AddColorStop(1, m.Bottom.RGBA())
	return g
}

type squareGradient struct {
	cx, cy   float64
	from, to RGB
}

func (g *squareGradient) ColorAt(x, y int) color.Color {
	dx := math.Abs(float64(x) + 0.5 - g.cx)
	dy := math.Abs(float64(y) + 0.5 - g.cy)
	half := math.Max(g.cx, g.cy)
	if half == 0 {
		return g.from.RGBA()
	}
	t := math.Min(math.Max(dx, dy)/half, 1)
	return lerp(g.from, g.to, t)
}

func lerp(a, b RGB, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// gradientBuilder builds a gradient mask from the background and the two
// endpoint colors, in the order the mask defines them.
type gradientBuilder func(back, c1, c2 RGB) ColorMask

var gradients = table[gradientBuilder]{
	entries: map[string]gradientBuilder{
		GradientRadial: func(back, c1, c2 RGB) ColorMask {
			return RadialGradientMask{Back: back, Center: c1, Edge: c2}
		},
		GradientSquare: func(back, c1, c2 RGB) ColorMask {
			return SquareGradientMask{Back: back, Center: c1, Edge: c2}
		},
		GradientHorizontal: func(back, c1, c2 RGB) ColorMask {
			return HorizontalGradientMask{Back: back, Left: c1, Right: c2}
		},
		GradientVertical: func(back, c1, c2 RGB) ColorMask {
			return VerticalGradientMask{Back: back, Top: c1, Bottom: c2}
		},
	},
	fallback: GradientRadial,
}

// GradientTypes lists the accepted gradientType tags, default first.
func GradientTypes() []string { return gradients.tags() }
