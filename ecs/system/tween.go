package system

import (
	"slices"

	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/tween"
)

// DefaultStep is one frame at ebiten's default 60 TPS.
const DefaultStep = 1.0 / 60

// TweenSystem advances every tween once per world update by a fixed step,
// drops the ones that finished and pushes a TweenCompletedEvent for each
// tween that reached its end. Cancelled tweens are dropped silently.
type TweenSystem struct {
	step   float64
	paused bool
}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{step: DefaultStep}
}

// SetTPS sets the step to one tick at the given rate. Non-positive rates
// keep the current step.
func (s *TweenSystem) SetTPS(tps int) {
	if tps > 0 {
		s.step = 1 / float64(tps)
	}
}

func (s *TweenSystem) SetStep(step float64) {
	if step >= 0 {
		s.step = step
	}
}

func (s *TweenSystem) Step() float64 {
	return s.step
}

// SetPaused freezes every tween without cancelling it.
func (s *TweenSystem) SetPaused(paused bool) {
	s.paused = paused
}

func (s *TweenSystem) Paused() bool {
	return s.paused
}

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil || s.paused {
		return
	}

	ecs.ForEach(w, component.TweensComponent, func(e ecs.Entity, set *component.Tweens) {
		if set == nil {
			return
		}

		// Active stays visible so outputs can cancel or replace tweens on
		// this entity mid-tick. Tweens attached now first tick next update.
		for _, tw := range slices.Clone(set.Active) {
			if tw.Runner == nil || !tw.Runner.Tick(s.step) {
				continue
			}
			if tw.Runner.State() == tween.StateCompleted {
				w.Events().Push(ecs.Event{
					Type: ecs.EventTweenCompleted,
					Data: ecs.TweenCompletedEvent{Entity: e, Name: tw.Name, Spec: tw.Spec, Reversed: tw.Reversed},
				})
			}
		}
		set.Active = slices.DeleteFunc(set.Active, func(tw component.Tween) bool {
			if tw.Runner == nil {
				return true
			}
			st := tw.Runner.State()
			return st == tween.StateCompleted || st == tween.StateCancelled
		})

		if cur, ok := ecs.Get(w, e, component.TweensComponent); ok && cur == set && len(set.Active) == 0 {
			ecs.Remove(w, e, component.TweensComponent)
		}
	})
}
