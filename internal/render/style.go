package render

// Options are the raw styling fields of a render request. Empty strings take
// the documented defaults.
type Options struct {
	ModuleShape string
	ColorMode   string

	FillColor string
	BackColor string

	GradientType   string
	GradientColor1 string
	GradientColor2 string
}

const (
	defaultFill      = "#000000"
	defaultBack      = "#FFFFFF"
	defaultGradient1 = "#000000"
	defaultGradient2 = "#FFFFFF"
)

// Style is the resolved rendering configuration. Shape, Mode and Gradient
// record the tags that were actually selected after fallback.
type Style struct {
	Drawer ModuleDrawer
	Mask   ColorMask

	Shape    string
	Mode     string
	Gradient string
}

type maskBuilder func(o Options) (string, ColorMask)

var modes = table[maskBuilder]{
	entries: map[string]maskBuilder{
		ModeSolid: func(o Options) (string, ColorMask) {
			return "", SolidMask{
				Back: colorOr(o.BackColor, defaultBack),
				Fill: colorOr(o.FillColor, defaultFill),
			}
		},
		ModeGradient: func(o Options) (string, ColorMask) {
			tag, build := gradients.resolve(o.GradientType)
			return tag, build(
				colorOr(o.BackColor, defaultBack),
				colorOr(o.GradientColor1, defaultGradient1),
				colorOr(o.GradientColor2, defaultGradient2),
			)
		},
	},
	fallback: ModeSolid,
}

// Resolve maps the request options onto exactly one drawer and one mask.
func (o Options) Resolve() Style {
	shape, drawer := drawers.resolve(o.ModuleShape)
	mode, build := modes.resolve(o.ColorMode)
	gradient, mask := build(o)
	return Style{
		Drawer:   drawer,
		Mask:     mask,
		Shape:    shape,
		Mode:     mode,
		Gradient: gradient,
	}
}
