package view

import "github.com/TuftsBCB/littleprotein/color"

// Option configures a Viewer.
type Option func(*Viewer)

// WithPalette sets the colors given to chains in order of appearance. An
// empty palette is ignored.
func WithPalette(palette []color.Color) Option {
	return func(v *Viewer) {
		if len(palette) > 0 {
			v.palette = palette
		}
	}
}

// WithChainColors fixes the color of some chains, by identifier.
func WithChainColors(colors map[byte]color.Color) Option {
	return func(v *Viewer) {
		v.overrides = colors
	}
}

func WithBackground(c color.Color) Option {
	return func(v *Viewer) {
		v.background = c
	}
}

func WithDepthShade(f float64) Option {
	return func(v *Viewer) { v.SetDepthShade(f) }
}

func WithViewDistance(d float64) Option {
	return func(v *Viewer) { v.SetViewDistance(d) }
}

func WithResidueScale(s float64) Option {
	return func(v *Viewer) { v.SetResidueScale(s) }
}
