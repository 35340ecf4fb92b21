// Package script evaluates easing curves written in tengo.
//
// A curve script reads the global t and assigns the eased value to the
// global out:
//
//	math := import("math")
//	out = math.sin(t * math.pi / 2)
//
// Both globals are predeclared, so scripts assign with = rather than :=.
package script

import (
	"errors"
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var (
	ErrNotNumeric = errors.New("script: out is not numeric")
	ErrEmpty      = errors.New("script: empty curve script")
)

const (
	inputVar  = "t"
	outputVar = "out"
)

// EvalError is the panic value of Curve.Evaluate when the script fails at
// runtime.
type EvalError struct {
	Name string
	T    float64
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("script: curve %s at t=%g: %v", e.Name, e.T, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Curve is a compiled tengo curve. It is safe to share between tweens; runs
// are serialized.
type Curve struct {
	name string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// Compile compiles src and runs it once at t=0 and t=1 so broken scripts
// fail here rather than mid-tween.
func Compile(name string, src []byte) (*Curve, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}

	s := tengo.NewScript(src)
	if err := s.Add(inputVar, 0.0); err != nil {
		return nil, err
	}
	if err := s.Add(outputVar, 0.0); err != nil {
		return nil, err
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	c := &Curve{name: name, compiled: compiled}
	for _, t := range []float64{0, 1} {
		if _, err := c.eval(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Curve) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Evaluate runs the script at t. A runtime failure panics with *EvalError.
func (c *Curve) Evaluate(t float64) float64 {
	v, err := c.eval(t)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns an independent copy with its own globals.
func (c *Curve) Clone() *Curve {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Curve{name: c.name, compiled: c.compiled.Clone()}
}

func (c *Curve) eval(t float64) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.compiled.Set(inputVar, t); err != nil {
		return 0, &EvalError{Name: c.name, T: t, Err: err}
	}
	if err := c.compiled.Run(); err != nil {
		return 0, &EvalError{Name: c.name, T: t, Err: err}
	}

	switch v := c.compiled.Get(outputVar).Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, &EvalError{Name: c.name, T: t, Err: ErrNotNumeric}
	}
}
