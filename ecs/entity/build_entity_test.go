package entity

import (
	"testing"

	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/ecs/system"
	"github.com/milk9111/tween/prefabs"
)

func loadLibrary(t *testing.T) *prefabs.Library {
	t.Helper()
	prev := prefabs.Dir
	prefabs.Dir = t.TempDir()
	t.Cleanup(func() { prefabs.Dir = prev })

	lib, err := prefabs.LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	return lib
}

func TestBuildScene(t *testing.T) {
	lib := loadLibrary(t)
	scene, err := prefabs.LoadScene()
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	w := ecs.NewWorld()
	ents, err := BuildScene(w, lib, scene)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	if len(ents) != len(scene.Entities) {
		t.Fatalf("expected %d entities, got %d", len(scene.Entities), len(ents))
	}

	for _, spec := range scene.Entities {
		e, ok := Find(w, spec.Name)
		if !ok {
			t.Fatalf("entity %s not found", spec.Name)
		}
		if got := len(system.ActiveTweens(w, e)); got != len(spec.Tweens) {
			t.Fatalf("entity %s: expected %d tweens, got %d", spec.Name, len(spec.Tweens), got)
		}
		if !ecs.Has(w, e, component.ShapeComponent) {
			t.Fatalf("entity %s has no shape", spec.Name)
		}
	}
}

func TestBuildEntityDefaults(t *testing.T) {
	lib := loadLibrary(t)
	w := ecs.NewWorld()

	e, err := BuildEntity(w, lib, prefabs.EntitySpec{Name: "plain"})
	if err != nil {
		t.Fatalf("BuildEntity: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Fatalf("expected unit scale, got %+v", tr)
	}
	tint, _ := ecs.Get(w, e, component.TintComponent)
	if tint != (component.Tint{R: 1, G: 1, B: 1, A: 1}) {
		t.Fatalf("expected white tint, got %+v", tint)
	}
	shape, _ := ecs.Get(w, e, component.ShapeComponent)
	if shape.Size != defaultSize {
		t.Fatalf("expected default size, got %g", shape.Size)
	}
}

func TestBuildEntityFailureDestroys(t *testing.T) {
	lib := loadLibrary(t)
	w := ecs.NewWorld()

	_, err := BuildEntity(w, lib, prefabs.EntitySpec{Name: "broken", Tweens: []string{"nope"}})
	if err == nil {
		t.Fatalf("expected error for unknown tween")
	}
	if n := len(w.Entities()); n != 0 {
		t.Fatalf("expected failed entity to be destroyed, %d alive", n)
	}
}
