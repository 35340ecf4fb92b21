package component

import "github.com/milk9111/tween/tween"

// Tween is one running tween on an entity. Name is what completion events
// report and what CancelTween matches.
type Tween struct {
	Name   string
	Runner tween.Runner

	// Spec is the prefab tween name this was started from, if any.
	Spec string
	// Reversed is set when the tween runs the spec from To back to From.
	Reversed bool
}

// Tweens is every tween running on an entity. Several may drive different
// properties at once.
type Tweens struct {
	Active []Tween
}

// Dispose cancels every tween silently.
func (t *Tweens) Dispose() {
	if t == nil {
		return
	}
	for _, tw := range t.Active {
		if tw.Runner != nil {
			tw.Runner.Cancel()
		}
	}
	t.Active = nil
}

var TweensComponent = NewComponent[*Tweens]()
