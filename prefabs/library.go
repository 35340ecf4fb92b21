package prefabs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/tween/tween"
)

const (
	CurvesFile = "curves.yaml"
	TweensFile = "tweens.yaml"
	SceneFile  = "demo.yaml"
)

// Library holds the named curves and tweens loaded from prefabs. It is not
// safe for concurrent use; reload it from the update loop.
type Library struct {
	curves map[string]tween.Curve
	tweens map[string]TweenSpec
}

func LoadLibrary() (*Library, error) {
	lib := &Library{}
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Reload rereads curves and tweens. On error the library keeps its previous
// content.
func (l *Library) Reload() error {
	curvesSpec, err := LoadSpec[CurvesSpec](CurvesFile)
	if err != nil {
		return err
	}
	tweensSpec, err := LoadSpec[TweensSpec](TweensFile)
	if err != nil {
		return err
	}

	curves := make(map[string]tween.Curve, len(curvesSpec.Curves))
	for _, cs := range curvesSpec.Curves {
		name := strings.TrimSpace(cs.Name)
		if name == "" {
			return fmt.Errorf("prefabs: %s: curve without a name", CurvesFile)
		}
		if _, dup := curves[name]; dup {
			return fmt.Errorf("prefabs: %s: duplicate curve %s", CurvesFile, name)
		}
		c, err := BuildCurve(cs)
		if err != nil {
			return err
		}
		curves[name] = c
	}

	tweens := make(map[string]TweenSpec, len(tweensSpec.Tweens))
	for _, ts := range tweensSpec.Tweens {
		name := strings.TrimSpace(ts.Name)
		if name == "" {
			return fmt.Errorf("prefabs: %s: tween without a name", TweensFile)
		}
		if _, dup := tweens[name]; dup {
			return fmt.Errorf("prefabs: %s: duplicate tween %s", TweensFile, name)
		}
		if _, err := resolveCurve(curves, ts.Curve); err != nil {
			return fmt.Errorf("prefabs: tween %s: %w", name, err)
		}
		tweens[name] = ts
	}

	l.curves = curves
	l.tweens = tweens
	return nil
}

// Curve resolves a curve name: library curves first, then built-in easings.
func (l *Library) Curve(name string) (tween.Curve, error) {
	if l == nil {
		return resolveCurve(nil, name)
	}
	return resolveCurve(l.curves, name)
}

func (l *Library) Tween(name string) (TweenSpec, error) {
	if l != nil {
		if ts, ok := l.tweens[name]; ok {
			return ts, nil
		}
	}
	return TweenSpec{}, fmt.Errorf("%w: %s", ErrUnknownTween, name)
}

func (l *Library) CurveNames() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.curves))
	for name := range l.curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (l *Library) TweenNames() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.tweens))
	for name := range l.tweens {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func resolveCurve(curves map[string]tween.Curve, name string) (tween.Curve, error) {
	name = strings.TrimSpace(name)
	if c, ok := curves[name]; ok {
		return c, nil
	}
	if c, ok := tween.EasingByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, name)
}

func LoadScene() (SceneSpec, error) {
	return LoadSpec[SceneSpec](SceneFile)
}
