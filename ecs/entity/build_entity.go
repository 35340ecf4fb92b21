package entity

import (
	"fmt"

	"github.com/milk9111/tween/ecs"
	"github.com/milk9111/tween/ecs/component"
	"github.com/milk9111/tween/ecs/system"
	"github.com/milk9111/tween/prefabs"
)

const defaultSize = 24

// BuildEntity creates an entity from its prefab spec and starts its tweens.
// On error the partly built entity is destroyed.
func BuildEntity(w *ecs.World, lib *prefabs.Library, spec prefabs.EntitySpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := buildEntity(w, e, lib, spec); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
	}
	return e, nil
}

func buildEntity(w *ecs.World, e ecs.Entity, lib *prefabs.Library, spec prefabs.EntitySpec) error {
	if err := ecs.Add(w, e, component.NameComponent, component.Name{Value: spec.Name}); err != nil {
		return err
	}

	tr := component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		ScaleX:   spec.Transform.ScaleX,
		ScaleY:   spec.Transform.ScaleY,
		Rotation: spec.Transform.Rotation,
	}
	if tr.ScaleX == 0 && tr.ScaleY == 0 {
		tr.ScaleX, tr.ScaleY = 1, 1
	}
	if err := ecs.Add(w, e, component.TransformComponent, tr); err != nil {
		return err
	}

	tint := component.Tint{R: 1, G: 1, B: 1, A: 1}
	if !spec.Tint.IsZero() {
		c, err := spec.Tint.Color()
		if err != nil {
			return err
		}
		tint = component.TintFromColor(c)
	}
	if err := ecs.Add(w, e, component.TintComponent, tint); err != nil {
		return err
	}

	size := spec.Size
	if size <= 0 {
		size = defaultSize
	}
	if err := ecs.Add(w, e, component.ShapeComponent, component.Shape{Size: size}); err != nil {
		return err
	}

	for _, name := range spec.Tweens {
		if err := system.StartSpec(w, e, lib, name, false); err != nil {
			return err
		}
	}
	return nil
}

// BuildScene builds every entity of the scene. It stops at the first
// failure and leaves the entities built so far in the world.
func BuildScene(w *ecs.World, lib *prefabs.Library, scene prefabs.SceneSpec) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(scene.Entities))
	for _, spec := range scene.Entities {
		e, err := BuildEntity(w, lib, spec)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Find returns the first entity with the given name.
func Find(w *ecs.World, name string) (ecs.Entity, bool) {
	for _, e := range w.Query(component.NameComponent.Kind()) {
		if n, ok := ecs.Get(w, e, component.NameComponent); ok && n.Value == name {
			return e, true
		}
	}
	return 0, false
}
