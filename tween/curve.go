package tween

// Curve remaps linear progress before the affine step. Evaluate is only
// called with progress in [0, 1] by the driver but may return any value;
// overshooting curves extrapolate.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc is an adapter for plain easing functions. For example:
//
//	CurveFunc(func(t float64) float64 { return t * t })
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 {
	return f(t)
}

// Linear is the identity curve.
var Linear Curve = CurveFunc(func(t float64) float64 { return t })

var _ Curve = CurveFunc(nil)

// Reverse plays a curve backwards: Reverse(c)(t) = 1 - c(1-t).
func Reverse(c Curve) Curve {
	c = orLinear(c)
	return CurveFunc(func(t float64) float64 {
		return 1 - c.Evaluate(1-t)
	})
}

// Mirror runs a curve forward over the first half and back over the second.
func Mirror(c Curve) Curve {
	c = orLinear(c)
	return CurveFunc(func(t float64) float64 {
		if t < 0.5 {
			return c.Evaluate(2 * t)
		}
		return c.Evaluate(2 - 2*t)
	})
}

func orLinear(c Curve) Curve {
	if c == nil {
		return Linear
	}
	return c
}
