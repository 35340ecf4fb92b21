package tween

// Ops is the arithmetic an interpolation needs for values of type T.
//
// Scale(v, 0) must be the identity for Add and Scale(v, 1) must equal v for
// interpolation endpoints to be exact. This is a contract on the supplied
// functions; it is not checked.
type Ops[T any] struct {
	add   func(a, b T) T
	sub   func(a, b T) T
	scale func(v T, s float64) T

	// lerp, when set, replaces sub/scale/add in Interpolate. Integer kinds
	// use it to blend without wrapping.
	lerp func(a, b T, t float64) T
}

// NewOps builds an operation bundle from explicit add, subtract and scale
// functions.
func NewOps[T any](add, sub func(a, b T) T, scale func(v T, s float64) T) (Ops[T], error) {
	ops := Ops[T]{add: add, sub: sub, scale: scale}
	if err := ops.Validate(); err != nil {
		return Ops[T]{}, err
	}
	return ops, nil
}

// NewNegOps builds an operation bundle for types that can negate but have no
// subtraction. Subtraction is add(a, neg(b)).
func NewNegOps[T any](add func(a, b T) T, neg func(v T) T, scale func(v T, s float64) T) (Ops[T], error) {
	if neg == nil {
		return Ops[T]{}, &MissingOperationError{Op: "subtract", Type: typeName[T]()}
	}
	if add == nil {
		return Ops[T]{}, &MissingOperationError{Op: "add", Type: typeName[T]()}
	}
	return NewOps(add, negSub(add, neg), scale)
}

// MustOps is NewOps that panics on a missing operation. Intended for
// package-level bundles.
func MustOps[T any](ops Ops[T], err error) Ops[T] {
	if err != nil {
		panic(err)
	}
	return ops
}

// Validate reports the first operation that is not set.
func (o Ops[T]) Validate() error {
	switch {
	case o.add == nil:
		return &MissingOperationError{Op: "add", Type: typeName[T]()}
	case o.sub == nil:
		return &MissingOperationError{Op: "subtract", Type: typeName[T]()}
	case o.scale == nil:
		return &MissingOperationError{Op: "scale", Type: typeName[T]()}
	}
	return nil
}

func (o Ops[T]) Add(a, b T) T {
	return o.add(a, b)
}

func (o Ops[T]) Sub(a, b T) T {
	return o.sub(a, b)
}

func (o Ops[T]) Scale(v T, s float64) T {
	return o.scale(v, s)
}

func negSub[T any](add func(a, b T) T, neg func(v T) T) func(a, b T) T {
	return func(a, b T) T {
		return add(a, neg(b))
	}
}
