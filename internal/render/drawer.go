package render

import "github.com/fogleman/gg"

// Module is one dark cell of the symbol in device pixels, together with
// which of its four neighbours are dark as well.
type Module struct {
	X, Y, Size float64

	Top, Right, Bottom, Left bool
}

// ModuleDrawer adds the outline of a single module to the current path.
// The caller fills the path with the active color mask.
type ModuleDrawer interface {
	Draw(dc *gg.Context, m Module)
}

// drawerFunc adapts a plain function to ModuleDrawer.
type drawerFunc func(dc *gg.Context, m Module)

func (f drawerFunc) Draw(dc *gg.Context, m Module) { f(dc, m) }

const (
	ShapeSquare     = "square"
	ShapeRounded    = "rounded"
	ShapeCircle     = "circle"
	ShapeVertical   = "vertical"
	ShapeHorizontal = "horizontal"
)

// barShrink is the bar thickness as a fraction of the module size.
const barShrink = 0.8

var drawers = table[ModuleDrawer]{
	entries: map[string]ModuleDrawer{
		ShapeSquare:     drawerFunc(drawSquare),
		ShapeRounded:    drawerFunc(drawRounded),
		ShapeCircle:     drawerFunc(drawCircle),
		ShapeVertical:   drawerFunc(drawVerticalBar),
		ShapeHorizontal: drawerFunc(drawHorizontalBar),
	},
	fallback: ShapeSquare,
}

// DrawerFor resolves a moduleShape tag. Unknown tags draw squares.
func DrawerFor(shape string) ModuleDrawer { return drawers.lookup(shape) }

// ModuleShapes lists the accepted moduleShape tags, default first.
func ModuleShapes() []string { return drawers.tags() }

func drawSquare(dc *gg.Context, m Module) {
	dc.DrawRectangle(m.X, m.Y, m.Size, m.Size)
}

func drawCircle(dc *gg.Context, m Module) {
	r := m.Size / 2
	dc.DrawCircle(m.X+r, m.Y+r, r)
}

// drawRounded rounds a corner only when neither side next to it touches
// another dark module, so runs of modules stay connected.
func drawRounded(dc *gg.Context, m Module) {
	h := m.Size / 2
	dc.DrawRoundedRectangle(m.X, m.Y, m.Size, m.Size, h)

	if m.Top || m.Left {
		dc.DrawRectangle(m.X, m.Y, h, h)
	}
	if m.Top || m.Right {
		dc.DrawRectangle(m.X+h, m.Y, h, h)
	}
	if m.Bottom || m.Right {
		dc.DrawRectangle(m.X+h, m.Y+h, h, h)
	}
	if m.Bottom || m.Left {
		dc.DrawRectangle(m.X, m.Y+h, h, h)
	}
}

func drawVerticalBar(dc *gg.Context, m Module) {
	w := m.Size * barShrink
	x := m.X + (m.Size-w)/2
	h := m.Size / 2
	dc.DrawRoundedRectangle(x, m.Y, w, m.Size, w/2)

	if m.Top {
		dc.DrawRectangle(x, m.Y, w, h)
	}
	if m.Bottom {
		dc.DrawRectangle(x, m.Y+h, w, h)
	}
}

func drawHorizontalBar(dc *gg.Context, m Module) {
	w := m.Size * barShrink
	y := m.Y + (m.Size-w)/2
	h := m.Size / 2
	dc.DrawRoundedRectangle(m.X, y, m.Size, w, w/2)

	if m.Left {
		dc.DrawRectangle(m.X, y, h, w)
	}
	if m.Right {
		dc.DrawRectangle(m.X+h, y, h, w)
	}
}
