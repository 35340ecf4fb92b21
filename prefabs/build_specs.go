package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/tween/script"
	"github.com/milk9111/tween/tween"
)

var (
	ErrAmbiguousCurve = errors.New("prefabs: curve sets more than one source")
	ErrUnknownEasing  = errors.New("prefabs: unknown easing")
	ErrUnknownCurve   = errors.New("prefabs: unknown curve")
	ErrUnknownTween   = errors.New("prefabs: unknown tween")
)

// BuildCurve turns a curve spec into a tween.Curve. Script curves are
// loaded through LoadScript so a file on disk overrides the embedded one.
func BuildCurve(spec CurveSpec) (tween.Curve, error) {
	sources := 0
	for _, set := range []bool{
		strings.TrimSpace(spec.Ease) != "",
		spec.Power != 0,
		spec.Steps != 0,
		len(spec.Keys) > 0,
		strings.TrimSpace(spec.Script) != "",
	} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousCurve, spec.Name)
	}

	var curve tween.Curve = tween.Linear
	switch {
	case strings.TrimSpace(spec.Ease) != "":
		c, ok := tween.EasingByName(spec.Ease)
		if !ok {
			return nil, fmt.Errorf("%w %q in curve %s", ErrUnknownEasing, spec.Ease, spec.Name)
		}
		curve = c
	case spec.Power != 0:
		curve = tween.Power(spec.Power)
	case spec.Steps != 0:
		curve = tween.Steps(spec.Steps)
	case len(spec.Keys) > 0:
		keys := make([]tween.Keyframe, 0, len(spec.Keys))
		for _, k := range spec.Keys {
			keys = append(keys, tween.Keyframe{Time: k.Time, Value: k.Value, InTangent: k.In, OutTangent: k.Out})
		}
		build := tween.NewKeyframes
		if spec.Smooth {
			build = tween.SmoothKeyframes
		}
		k, err := build(keys...)
		if err != nil {
			return nil, fmt.Errorf("prefabs: curve %s: %w", spec.Name, err)
		}
		curve = k
	case strings.TrimSpace(spec.Script) != "":
		src, err := LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", spec.Script, err)
		}
		c, err := script.Compile(spec.Name, src)
		if err != nil {
			return nil, err
		}
		curve = c
	}

	if spec.Reverse {
		curve = tween.Reverse(curve)
	}
	if spec.Mirror {
		curve = tween.Mirror(curve)
	}
	return curve, nil
}
