// Package render turns a payload and a resolved Style into a styled QR code
// raster, and composites optional logos onto it.
package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
	"golang.org/x/image/draw"
)

const (
	// BoxSize is the side of one module in device pixels.
	BoxSize = 10
	// Border is the quiet zone width in modules.
	Border = 4
)

// matrixWriter is a qrcode.Writer that keeps the encoded matrix instead of
// drawing it.
type matrixWriter struct {
	mat     qrcode.Matrix
	written bool
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	w.mat = mat
	w.written = true
	return nil
}

func (w *matrixWriter) Close() error { return nil }

// Symbol encodes content at the highest error correction level, letting the
// encoder pick the smallest version that fits. The result is the row-major
// module grid without quiet zone; true means dark.
func Symbol(content string) ([][]bool, error) {
	qrc, err := qrcode.NewWith(content,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest),
	)
	if err != nil {
		return nil, errors.Wrap(err, "encode symbol")
	}

	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, errors.Wrap(err, "capture matrix")
	}
	if !w.written {
		return nil, errors.New("encoder produced no matrix")
	}

	n := qrc.Dimension()
	if n <= 0 {
		return nil, errors.Errorf("invalid symbol dimension %d", n)
	}
	grid := make([][]bool, n)
	for y := range grid {
		grid[y] = make([]bool, n)
	}
	w.mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if x < n && y < n {
			grid[y][x] = v.IsSet()
		}
	})
	return grid, nil
}

// finderSize is the side of a finder pattern in modules.
const finderSize = 7

var squareDrawer = drawerFunc(drawSquare)

// inFinder reports whether module (x, y) of an n x n symbol belongs to one
// of the three finder patterns. Those are always drawn square so readers
// can locate the symbol whatever shape the data modules take.
func inFinder(x, y, n int) bool {
	top, left := y < finderSize, x < finderSize
	return (top && left) || (top && x >= n-finderSize) || (left && y >= n-finderSize)
}

// Render encodes content and paints it with style. The returned image is
// opaque and (dimension+2*Border)*BoxSize pixels square.
func Render(content string, style Style) (*image.RGBA, error) {
	if style.Drawer == nil || style.Mask == nil {
		return nil, errors.New("incomplete style")
	}
	grid, err := Symbol(content)
	if err != nil {
		return nil, err
	}
	return paint(grid, style), nil
}

func paint(grid [][]bool, style Style) *image.RGBA {
	n := len(grid)
	side := (n + 2*Border) * BoxSize
	back := style.Mask.Background().RGBA()

	dc := gg.NewContext(side, side)
	dc.SetColor(back)
	dc.Clear()
	dc.SetFillStyle(style.Mask.Foreground(side, side))

	dark := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < n && y < n && grid[y][x]
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !grid[y][x] {
				continue
			}
			drawer := style.Drawer
			if inFinder(x, y, n) {
				drawer = squareDrawer
			}
			drawer.Draw(dc, Module{
				X:      float64((x + Border) * BoxSize),
				Y:      float64((y + Border) * BoxSize),
				Size:   BoxSize,
				Top:    dark(x, y-1),
				Right:  dark(x+1, y),
				Bottom: dark(x, y+1),
				Left:   dark(x-1, y),
			})
			dc.Fill()
		}
	}

	// Flatten onto the background so the output never carries alpha.
	out := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(out, out.Bounds(), image.NewUniform(back), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Over)
	return out
}
