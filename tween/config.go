package tween

// Config pairs the operations for T with an easing curve. It is a value:
// the With methods return modified copies and never touch the receiver.
type Config[T any] struct {
	ops   Ops[T]
	curve Curve
}

type configOptions struct {
	curve Curve
}

type ConfigOption func(*configOptions)

// WithCurve sets the easing curve. Nil keeps the default linear curve.
func WithCurve(c Curve) ConfigOption {
	return func(o *configOptions) {
		if c != nil {
			o.curve = c
		}
	}
}

// NewConfig validates ops up front so a missing operation fails here rather
// than on the first tick.
func NewConfig[T any](ops Ops[T], opts ...ConfigOption) (Config[T], error) {
	if err := ops.Validate(); err != nil {
		return Config[T]{}, err
	}
	o := configOptions{curve: Linear}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return Config[T]{ops: ops, curve: o.curve}, nil
}

// DeriveConfig is NewConfig over Derive[T].
func DeriveConfig[T any](opts ...ConfigOption) (Config[T], error) {
	ops, err := Derive[T]()
	if err != nil {
		return Config[T]{}, err
	}
	return NewConfig(ops, opts...)
}

func (c Config[T]) Ops() Ops[T] {
	return c.ops
}

func (c Config[T]) Curve() Curve {
	return orLinear(c.curve)
}

func (c Config[T]) WithCurve(curve Curve) Config[T] {
	c.curve = orLinear(curve)
	return c
}

// Interpolate evaluates the config curve at t and blends start and end.
func (c Config[T]) Interpolate(start, end T, t float64) T {
	return InterpolateEased(start, end, t, c.Curve(), c.ops)
}

// Start creates a session and starts it immediately.
func (c Config[T]) Start(start, end T, duration float64, output func(T)) (*Session[T], error) {
	s, err := NewSession(c, start, end, duration, output)
	if err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}
