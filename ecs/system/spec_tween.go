package system

import (
	"fmt"

	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/prefabs"
)

// StartSpec starts the named prefab tween on e, from From to To, or the
// other way round when reversed is set. The tween is named after the spec.
func StartSpec(w *ecs.World, e ecs.Entity, lib *prefabs.Library, name string, reversed bool) error {
	spec, err := lib.Tween(name)
	if err != nil {
		return err
	}
	curve, err := lib.Curve(spec.Curve)
	if err != nil {
		return fmt.Errorf("system: tween %s: %w", name, err)
	}
	if reversed {
		spec = spec.Reversed()
	}
	opts := TweenOptions{
		Name:     spec.Name,
		Curve:    curve,
		Delay:    spec.Delay,
		Spec:     spec.Name,
		Reversed: reversed,
	}

	switch spec.Property {
	case prefabs.PropertyPosition:
		from, err := spec.From.Vector()
		if err != nil {
			return err
		}
		to, err := spec.To.Vector()
		if err != nil {
			return err
		}
		return TweenPosition(w, e, from, to, spec.Duration, opts)
	case prefabs.PropertyTint:
		from, err := spec.From.Color()
		if err != nil {
			return err
		}
		to, err := spec.To.Color()
		if err != nil {
			return err
		}
		return TweenTint(w, e, component.TintFromColor(from), component.TintFromColor(to), spec.Duration, opts)
	}

	from, err := spec.From.Float()
	if err != nil {
		return err
	}
	to, err := spec.To.Float()
	if err != nil {
		return err
	}
	switch spec.Property {
	case prefabs.PropertyX:
		return TweenX(w, e, from, to, spec.Duration, opts)
	case prefabs.PropertyY:
		return TweenY(w, e, from, to, spec.Duration, opts)
	case prefabs.PropertyScale:
		return TweenScale(w, e, from, to, spec.Duration, opts)
	case prefabs.PropertyRotation:
		return TweenRotation(w, e, from, to, spec.Duration, opts)
	case prefabs.PropertyAlpha:
		return TweenAlpha(w, e, from, to, spec.Duration, opts)
	default:
		return fmt.Errorf("system: tween %s: unknown property %q", name, spec.Property)
	}
}
