package component

import "image/color"

// Tint is a straight-alpha color with channels in [0, 1]. Tweens blend it
// channel by channel; values may leave the range while overshooting and
// are clamped only when converted for drawing.
type Tint struct {
	R, G, B, A float64
}

var TintComponent = NewComponent[Tint]()

func (t Tint) Add(o Tint) Tint {
	return Tint{R: t.R + o.R, G: t.G + o.G, B: t.B + o.B, A: t.A + o.A}
}

func (t Tint) Sub(o Tint) Tint {
	return Tint{R: t.R - o.R, G: t.G - o.G, B: t.B - o.B, A: t.A - o.A}
}

func (t Tint) Scale(s float64) Tint {
	return Tint{R: t.R * s, G: t.G * s, B: t.B * s, A: t.A * s}
}

func TintFromColor(c color.NRGBA) Tint {
	return Tint{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (t Tint) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(t.R), G: channel(t.G), B: channel(t.B), A: channel(t.A)}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
