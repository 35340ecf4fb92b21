package system

import (
	"log"

	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/prefabs"
)

// YoyoSystem restarts prefab tweens marked yoyo in the opposite direction
// when they complete. It must run after TweenSystem in the same world.
type YoyoSystem struct {
	lib *prefabs.Library
}

func NewYoyoSystem(lib *prefabs.Library) *YoyoSystem {
	return &YoyoSystem{lib: lib}
}

func (s *YoyoSystem) Update(w *ecs.World) {
	if w == nil || s.lib == nil {
		return
	}

	for _, evt := range w.Events().Peek(ecs.EventTweenCompleted) {
		done, ok := evt.Data.(ecs.TweenCompletedEvent)
		if !ok || done.Spec == "" || !w.IsAlive(done.Entity) {
			continue
		}
		spec, err := s.lib.Tween(done.Spec)
		if err != nil {
			log.Printf("yoyo: entity=%d: %v", done.Entity, err)
			continue
		}
		if !spec.Yoyo {
			continue
		}
		if err := StartSpec(w, done.Entity, s.lib, done.Spec, !done.Reversed); err != nil {
			log.Printf("yoyo: entity=%d restart %s: %v", done.Entity, done.Spec, err)
		}
	}
}
