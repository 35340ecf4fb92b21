package tween

import (
	"maps"
	"math"
	"slices"
	"strings"
)

var (
	InQuad    Curve = CurveFunc(func(t float64) float64 { return t * t })
	OutQuad   Curve = CurveFunc(func(t float64) float64 { return t * (2 - t) })
	InOutQuad Curve = CurveFunc(func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	})

	InCubic    Curve = CurveFunc(func(t float64) float64 { return t * t * t })
	OutCubic   Curve = CurveFunc(func(t float64) float64 { u := t - 1; return u*u*u + 1 })
	InOutCubic Curve = CurveFunc(func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 0.5*u*u*u + 1
	})

	InSine    Curve = CurveFunc(func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) })
	OutSine   Curve = CurveFunc(func(t float64) float64 { return math.Sin(t * math.Pi / 2) })
	InOutSine Curve = CurveFunc(func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 })

	InExpo Curve = CurveFunc(func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	})
	OutExpo Curve = CurveFunc(func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	})

	// InBack and OutBack overshoot the [0, 1] range.
	InBack Curve = CurveFunc(func(t float64) float64 {
		return backC3*t*t*t - backC1*t*t
	})
	OutBack Curve = CurveFunc(func(t float64) float64 {
		u := t - 1
		return 1 + backC3*u*u*u + backC1*u*u
	})

	OutBounce  Curve = CurveFunc(outBounce)
	OutElastic Curve = CurveFunc(func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
	})
)

const (
	backC1    = 1.70158
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
)

func outBounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Power returns t^exp. An exponent of 1 is linear.
func Power(exp float64) Curve {
	if exp == 1 {
		return Linear
	}
	return CurveFunc(func(t float64) float64 {
		return math.Pow(t, exp)
	})
}

// Steps quantizes progress into n equal jumps. n <= 0 is linear.
func Steps(n int) Curve {
	if n <= 0 {
		return Linear
	}
	steps := float64(n)
	return CurveFunc(func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		return math.Floor(t*steps) / steps
	})
}

var easings = map[string]Curve{
	"linear":       Linear,
	"in_quad":      InQuad,
	"out_quad":     OutQuad,
	"in_out_quad":  InOutQuad,
	"in_cubic":     InCubic,
	"out_cubic":    OutCubic,
	"in_out_cubic": InOutCubic,
	"in_sine":      InSine,
	"out_sine":     OutSine,
	"in_out_sine":  InOutSine,
	"in_expo":      InExpo,
	"out_expo":     OutExpo,
	"in_back":      InBack,
	"out_back":     OutBack,
	"out_bounce":   OutBounce,
	"out_elastic":  OutElastic,
}

// EasingByName looks up a built-in easing. Names are snake case and case
// insensitive, e.g. "in_out_quad". Dashes are accepted for underscores.
func EasingByName(name string) (Curve, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return Linear, true
	}
	c, ok := easings[key]
	return c, ok
}

// EasingNames lists the names EasingByName accepts.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(easings))
}
