// Package color holds the RGB colors given to residues and the smooth
// adjustments used to shade them by depth.
//
// A Color stores its channels in [0, 1]. Nudging a channel (or hue,
// saturation, lightness) happens in logit space: the value is mapped through
// the inverse sigmoid, shifted, and mapped back. The result never leaves
// [0, 1], no matter how large the shift, and a channel close to its limit
// moves less than one in the middle of its range.
package color

import (
	"fmt"
	"math"
)

// Color is an immutable RGB color.
type Color struct {
	r, g, b float64
}

// New returns the color with the given channels in [0, 255]. Values are
// rounded and clamped.
func New(r, g, b float64) Color {
	return Color{channel(r) / 255, channel(g) / 255, channel(b) / 255}
}

// FromRGB returns the color for an integer RGB triple.
func FromRGB(rgb [3]int) Color {
	return New(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
}

// FromHSL returns the color with hue h in degrees and saturation s and
// lightness l in percent.
func FromHSL(h, s, l float64) Color {
	return New(HSLToRGB(h, s, l))
}

func (c Color) Red() int   { return int(channel(c.r * 255)) }
func (c Color) Green() int { return int(channel(c.g * 255)) }
func (c Color) Blue() int  { return int(channel(c.b * 255)) }

// RGB returns the red, green and blue channels in [0, 255].
func (c Color) RGB() [3]int {
	return [3]int{c.Red(), c.Green(), c.Blue()}
}

// HSL returns hue in [0, 360) degrees, and saturation and lightness in
// [0, 100] percent.
func (c Color) HSL() (h, s, l float64) {
	rgb := c.RGB()
	h, s, l = RGBToHSL(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
	if h < 0 || h >= 360 {
		h = 0
	}
	return h, clamp(s, 0, 100), clamp(l, 0, 100)
}

func (c Color) Hue() float64 {
	h, _, _ := c.HSL()
	return h
}

func (c Color) Saturation() float64 {
	_, s, _ := c.HSL()
	return s
}

func (c Color) Lightness() float64 {
	_, _, l := c.HSL()
	return l
}

// Mean is the average of the three integer channels.
func (c Color) Mean() float64 {
	rgb := c.RGB()
	return float64(rgb[0]+rgb[1]+rgb[2]) / 3
}

func (c Color) UpdatedRed(delta float64) Color {
	return New(smooth(c.r, delta)*255, c.g*255, c.b*255)
}

func (c Color) UpdatedGreen(delta float64) Color {
	return New(c.r*255, smooth(c.g, delta)*255, c.b*255)
}

func (c Color) UpdatedBlue(delta float64) Color {
	return New(c.r*255, c.g*255, smooth(c.b, delta)*255)
}

func (c Color) UpdatedHue(delta float64) Color {
	h, s, l := c.hsl()
	return FromHSL(smooth(h/360, delta)*360, s, l)
}

func (c Color) UpdatedSaturation(delta float64) Color {
	h, s, l := c.hsl()
	return FromHSL(h, smooth(s/100, delta)*100, l)
}

// UpdatedLightness returns a lighter (delta > 0) or darker (delta < 0)
// version of c. A delta of zero returns c, up to rounding.
func (c Color) UpdatedLightness(delta float64) Color {
	h, s, l := c.hsl()
	return FromHSL(h, s, smooth(l/100, delta)*100)
}

// hsl is HSL computed from the rounded channels, without clamping.
func (c Color) hsl() (h, s, l float64) {
	rgb := c.RGB()
	return RGBToHSL(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())
}

// RGBToHSL converts channels in [0, 255] to hue in degrees and saturation
// and lightness in percent. Gray colors have hue 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	r, g, b = r/255, g/255, b/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	chroma := hi - lo
	l = (hi + lo) / 2

	if chroma == 0 {
		return 0, 0, 100 * l
	}
	switch hi {
	case r:
		h = (g - b) / chroma
	case g:
		h = 2 + (b-r)/chroma
	default:
		h = 4 + (r-g)/chroma
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if l <= 0.5 {
		s = chroma / (2 * l)
	} else {
		s = chroma / (2 - 2*l)
	}
	return h, 100 * s, 100 * l
}

// HSLToRGB converts hue in degrees and saturation and lightness in percent
// to channels in [0, 255].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	s, l = s/100, l/100
	a := s * math.Min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		if k < 0 {
			k += 12
		}
		return l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
	}
	return 255 * f(0), 255 * f(8), 255 * f(4)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func logit(x float64) float64 {
	return -math.Log(1/x - 1)
}

// smooth shifts x in [0, 1] by delta in logit space. 0 and 1 are fixed
// points.
func smooth(x, delta float64) float64 {
	return sigmoid(logit(clamp(x, 0, 1)) + delta)
}

// channel rounds and clamps v to an integer value in [0, 255]. NaN is 0.
func channel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(math.Round(v), 0, 255)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
