package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/spf13/cast"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CurvesSpec struct {
	Curves []CurveSpec `yaml:"curves"`
}

// CurveSpec describes one named curve. At most one of Ease, Power, Steps,
// Keys or Script may be set; none means linear. Reverse and Mirror wrap the
// result.
type CurveSpec struct {
	Name    string    `yaml:"name"`
	Ease    string    `yaml:"ease"`
	Power   float64   `yaml:"power"`
	Steps   int       `yaml:"steps"`
	Keys    []KeySpec `yaml:"keys"`
	Smooth  bool      `yaml:"smooth"`
	Script  string    `yaml:"script"`
	Reverse bool      `yaml:"reverse"`
	Mirror  bool      `yaml:"mirror"`
}

type KeySpec struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
	In    float64 `yaml:"in"`
	Out   float64 `yaml:"out"`
}

type TweensSpec struct {
	Tweens []TweenSpec `yaml:"tweens"`
}

// Property names a Transform or Tint field a tween drives.
type Property string

const (
	PropertyX        Property = "x"
	PropertyY        Property = "y"
	PropertyPosition Property = "position"
	PropertyScale    Property = "scale"
	PropertyRotation Property = "rotation"
	PropertyAlpha    Property = "alpha"
	PropertyTint     Property = "tint"
)

type TweenSpec struct {
	Name     string   `yaml:"name"`
	Property Property `yaml:"property"`
	From     Value    `yaml:"from"`
	To       Value    `yaml:"to"`
	Duration float64  `yaml:"duration"`
	Curve    string   `yaml:"curve"`
	Delay    float64  `yaml:"delay"`
	Yoyo     bool     `yaml:"yoyo"`
}

// Reversed swaps the endpoints.
func (s TweenSpec) Reversed() TweenSpec {
	s.From, s.To = s.To, s.From
	return s
}

type SceneSpec struct {
	Entities []EntitySpec `yaml:"entities"`
}

type EntitySpec struct {
	Name      string        `yaml:"name"`
	Size      float64       `yaml:"size"`
	Transform TransformSpec `yaml:"transform"`
	Tint      Value         `yaml:"tint"`
	Tweens    []string      `yaml:"tweens"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// Value is a loosely typed YAML scalar, sequence or mapping. It is decoded
// on demand into whatever the tween property needs.
type Value struct {
	Raw any
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v.Raw = raw
	return nil
}

func (v Value) IsZero() bool {
	return v.Raw == nil
}

func (v Value) Float() (float64, error) {
	f, err := cast.ToFloat64E(v.Raw)
	if err != nil {
		return 0, fmt.Errorf("prefabs: value %v is not a number: %w", v.Raw, err)
	}
	return f, nil
}

// Vector accepts [x, y], {x: .., y: ..} or a single number used for both
// components.
func (v Value) Vector() (cp.Vector, error) {
	switch raw := v.Raw.(type) {
	case []any:
		if len(raw) != 2 {
			return cp.Vector{}, fmt.Errorf("prefabs: vector needs 2 components, got %d", len(raw))
		}
		x, err := cast.ToFloat64E(raw[0])
		if err != nil {
			return cp.Vector{}, fmt.Errorf("prefabs: vector x: %w", err)
		}
		y, err := cast.ToFloat64E(raw[1])
		if err != nil {
			return cp.Vector{}, fmt.Errorf("prefabs: vector y: %w", err)
		}
		return cp.Vector{X: x, Y: y}, nil
	case map[string]any:
		m := cast.ToStringMap(raw)
		x, err := cast.ToFloat64E(m["x"])
		if err != nil {
			return cp.Vector{}, fmt.Errorf("prefabs: vector x: %w", err)
		}
		y, err := cast.ToFloat64E(m["y"])
		if err != nil {
			return cp.Vector{}, fmt.Errorf("prefabs: vector y: %w", err)
		}
		return cp.Vector{X: x, Y: y}, nil
	default:
		f, err := v.Float()
		if err != nil {
			return cp.Vector{}, err
		}
		return cp.Vector{X: f, Y: f}, nil
	}
}

// Color accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
func (v Value) Color() (color.NRGBA, error) {
	s, err := cast.ToStringE(v.Raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("prefabs: color %v: %w", v.Raw, err)
	}
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	return parseHexColor(s)
}

func parseHexColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("prefabs: invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
