package prefabs

import (
	"errors"
	"math"
	"testing"
)

func TestBuildCurve(t *testing.T) {
	cases := []struct {
		name string
		spec CurveSpec
		at   float64
		want float64
	}{
		{"default_linear", CurveSpec{Name: "lin"}, 0.3, 0.3},
		{"ease", CurveSpec{Name: "q", Ease: "in_quad"}, 0.5, 0.25},
		{"power", CurveSpec{Name: "p", Power: 3}, 0.5, 0.125},
		{"steps", CurveSpec{Name: "s", Steps: 2}, 0.7, 0.5},
		{"keys", CurveSpec{Name: "k", Keys: []KeySpec{{Time: 0, Value: 0, Out: 1}, {Time: 1, Value: 1, In: 1}}}, 0.5, 0.5},
		{"smooth_keys", CurveSpec{Name: "sk", Smooth: true, Keys: []KeySpec{{Time: 0, Value: 0}, {Time: 1, Value: 2}}}, 0.5, 1},
		{"reverse", CurveSpec{Name: "r", Ease: "in_quad", Reverse: true}, 0.5, 0.75},
		{"mirror", CurveSpec{Name: "m", Mirror: true}, 0.75, 0.5},
		{"script", CurveSpec{Name: "ss", Script: "smoothstep"}, 0.5, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			curve, err := BuildCurve(c.spec)
			if err != nil {
				t.Fatalf("BuildCurve: %v", err)
			}
			if got := curve.Evaluate(c.at); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Evaluate(%g) = %g, want %g", c.at, got, c.want)
			}
		})
	}
}

func TestBuildCurveErrors(t *testing.T) {
	cases := []struct {
		name string
		spec CurveSpec
		want error
	}{
		{"ambiguous", CurveSpec{Name: "a", Ease: "in_quad", Power: 2}, ErrAmbiguousCurve},
		{"unknown_ease", CurveSpec{Name: "u", Ease: "wobble"}, ErrUnknownEasing},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildCurve(c.spec)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	if _, err := BuildCurve(CurveSpec{Name: "missing", Script: "does_not_exist"}); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
