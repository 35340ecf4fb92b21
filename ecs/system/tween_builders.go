package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/tween"
)

var ErrNoTarget = errors.New("system: entity lacks the component the tween drives")

var (
	floatOps  = tween.NumberOps[float64]()
	vectorOps = tween.MustDerive[cp.Vector]()
	tintOps   = tween.AffineOps[component.Tint]()
)

// TweenOptions configures a tween started on an entity. Name defaults to
// the property the tween drives.
type TweenOptions struct {
	Name  string
	Curve tween.Curve
	Delay float64

	Spec     string
	Reversed bool
}

// Attach adds tw to the entity's tweens. A running tween with the same name
// is cancelled and replaced.
func Attach(w *ecs.World, e ecs.Entity, tw component.Tween) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if tw.Runner == nil {
		return component.ErrNilComponent
	}
	set, ok := ecs.Get(w, e, component.TweensComponent)
	if !ok || set == nil {
		set = &component.Tweens{}
		if err := ecs.Add(w, e, component.TweensComponent, set); err != nil {
			return err
		}
	}
	for i, cur := range set.Active {
		if cur.Name == tw.Name {
			cur.Runner.Cancel()
			set.Active[i] = tw
			return nil
		}
	}
	set.Active = append(set.Active, tw)
	return nil
}

// CancelTween stops the named tween without a final output.
func CancelTween(w *ecs.World, e ecs.Entity, name string) bool {
	set, ok := ecs.Get(w, e, component.TweensComponent)
	if !ok || set == nil {
		return false
	}
	for i, cur := range set.Active {
		if cur.Name == name {
			cur.Runner.Cancel()
			set.Active = append(set.Active[:i], set.Active[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll stops every tween on the entity.
func CancelAll(w *ecs.World, e ecs.Entity) bool {
	return ecs.Remove(w, e, component.TweensComponent)
}

// ActiveTweens lists the names of the tweens running on e.
func ActiveTweens(w *ecs.World, e ecs.Entity) []string {
	set, ok := ecs.Get(w, e, component.TweensComponent)
	if !ok || set == nil {
		return nil
	}
	names := make([]string, 0, len(set.Active))
	for _, tw := range set.Active {
		names = append(names, tw.Name)
	}
	return names
}

func TweenX(w *ecs.World, e ecs.Entity, from, to, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TransformComponent, floatOps, from, to, duration, withName(opts, "x"),
		func(t *component.Transform, v float64) { t.X = v })
}

func TweenY(w *ecs.World, e ecs.Entity, from, to, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TransformComponent, floatOps, from, to, duration, withName(opts, "y"),
		func(t *component.Transform, v float64) { t.Y = v })
}

func TweenPosition(w *ecs.World, e ecs.Entity, from, to cp.Vector, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TransformComponent, vectorOps, from, to, duration, withName(opts, "position"),
		func(t *component.Transform, v cp.Vector) { t.X, t.Y = v.X, v.Y })
}

// TweenScale scales both axes uniformly.
func TweenScale(w *ecs.World, e ecs.Entity, from, to, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TransformComponent, floatOps, from, to, duration, withName(opts, "scale"),
		func(t *component.Transform, v float64) { t.ScaleX, t.ScaleY = v, v })
}

func TweenRotation(w *ecs.World, e ecs.Entity, from, to, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TransformComponent, floatOps, from, to, duration, withName(opts, "rotation"),
		func(t *component.Transform, v float64) { t.Rotation = v })
}

func TweenAlpha(w *ecs.World, e ecs.Entity, from, to, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TintComponent, floatOps, from, to, duration, withName(opts, "alpha"),
		func(t *component.Tint, v float64) { t.A = v })
}

func TweenTint(w *ecs.World, e ecs.Entity, from, to component.Tint, duration float64, opts TweenOptions) error {
	return startOn(w, e, component.TintComponent, tintOps, from, to, duration, withName(opts, "tint"),
		func(t *component.Tint, v component.Tint) { *t = v })
}

// startOn runs a session whose output writes into component C of e. The
// output is a no-op once the entity or component is gone.
func startOn[C, T any](
	w *ecs.World,
	e ecs.Entity,
	handle component.ComponentHandle[C],
	ops tween.Ops[T],
	from, to T,
	duration float64,
	opts TweenOptions,
	set func(*C, T),
) error {
	if !ecs.Has(w, e, handle) {
		return fmt.Errorf("%w: tween %s on entity %d", ErrNoTarget, opts.Name, e)
	}
	cfg, err := tween.NewConfig(ops, tween.WithCurve(opts.Curve))
	if err != nil {
		return err
	}
	session, err := tween.NewSession(cfg, from, to, duration, func(v T) {
		ecs.Update(w, e, handle, func(c *C) { set(c, v) })
	})
	if err != nil {
		return err
	}

	var runner tween.Runner = session
	if opts.Delay > 0 {
		runner = tween.NewSequence(tween.NewDelay(opts.Delay), session)
	}
	return Attach(w, e, component.Tween{
		Name:     opts.Name,
		Runner:   runner,
		Spec:     opts.Spec,
		Reversed: opts.Reversed,
	})
}

func withName(opts TweenOptions, name string) TweenOptions {
	if opts.Name == "" {
		opts.Name = name
	}
	return opts
}
