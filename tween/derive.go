package tween

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type, named or not.
type Number interface {
	constraints.Integer | constraints.Float
}

// Affine is implemented by value types with native vector arithmetic.
type Affine[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
}

type adder[T any] interface{ Add(T) T }

type subtracter[T any] interface{ Sub(T) T }

type negater[T any] interface{ Neg() T }

type scaler[T any] interface{ Scale(float64) T }

type multiplier[T any] interface{ Mult(float64) T }

// NumberOps returns the native arithmetic for a numeric type. Integer
// results are rounded to the nearest value, and integer interpolation is
// computed in float64 from the endpoints so the difference never wraps.
func NumberOps[N Number]() Ops[N] {
	half := 0.5
	integer := N(half) == 0

	ops := Ops[N]{
		add: func(a, b N) N { return a + b },
		sub: func(a, b N) N { return a - b },
		scale: func(v N, s float64) N {
			f := float64(v) * s
			if integer {
				f = math.Round(f)
			}
			return N(f)
		},
	}
	if integer {
		ops.lerp = endpointLerp(func(a, b N, t float64) N {
			return N(blendInt(float64(a), float64(b), t))
		})
	}
	return ops
}

// AffineOps returns the operations of a type that carries its own Add, Sub
// and Scale methods.
func AffineOps[T Affine[T]]() Ops[T] {
	return Ops[T]{
		add:   func(a, b T) T { return a.Add(b) },
		sub:   func(a, b T) T { return a.Sub(b) },
		scale: func(v T, s float64) T { return v.Scale(s) },
	}
}

// Derive resolves the operations for T at runtime.
//
// Numeric kinds use their native arithmetic. Other types must have an
// Add(T) T method, a Scale(float64) T or Mult(float64) T method, and either
// Sub(T) T or Neg() T. Sub is preferred; with only Neg, subtraction is
// add(a, neg(b)). Anything that cannot be resolved returns a
// *MissingOperationError.
func Derive[T any]() (Ops[T], error) {
	rt := reflect.TypeFor[T]()
	if ops, ok := kindOps[T](rt); ok {
		return ops, nil
	}

	var zero T
	probe := any(zero)
	if probe == nil {
		return Ops[T]{}, &MissingOperationError{Op: "add", Type: rt.String()}
	}

	if _, ok := probe.(adder[T]); !ok {
		return Ops[T]{}, &MissingOperationError{Op: "add", Type: rt.String()}
	}
	add := func(a, b T) T { return any(a).(adder[T]).Add(b) }

	var sub func(a, b T) T
	if _, ok := probe.(subtracter[T]); ok {
		sub = func(a, b T) T { return any(a).(subtracter[T]).Sub(b) }
	} else if _, ok := probe.(negater[T]); ok {
		sub = negSub(add, func(v T) T { return any(v).(negater[T]).Neg() })
	} else {
		return Ops[T]{}, &MissingOperationError{Op: "subtract", Type: rt.String()}
	}

	var scale func(v T, s float64) T
	if _, ok := probe.(scaler[T]); ok {
		scale = func(v T, s float64) T { return any(v).(scaler[T]).Scale(s) }
	} else if _, ok := probe.(multiplier[T]); ok {
		scale = func(v T, s float64) T { return any(v).(multiplier[T]).Mult(s) }
	} else {
		return Ops[T]{}, &MissingOperationError{Op: "scale", Type: rt.String()}
	}

	return Ops[T]{add: add, sub: sub, scale: scale}, nil
}

// MustDerive is Derive that panics when an operation cannot be resolved.
func MustDerive[T any]() Ops[T] {
	return MustOps(Derive[T]())
}

func kindOps[T any](rt reflect.Type) (Ops[T], bool) {
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return Ops[T]{
			add: func(a, b T) T { return setFloat[T](valueOf(a).Float() + valueOf(b).Float()) },
			sub: func(a, b T) T { return setFloat[T](valueOf(a).Float() - valueOf(b).Float()) },
			scale: func(v T, s float64) T {
				return setFloat[T](valueOf(v).Float() * s)
			},
		}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ops[T]{
			add: func(a, b T) T { return setInt[T](valueOf(a).Int() + valueOf(b).Int()) },
			sub: func(a, b T) T { return setInt[T](valueOf(a).Int() - valueOf(b).Int()) },
			scale: func(v T, s float64) T {
				return setInt[T](int64(math.Round(float64(valueOf(v).Int()) * s)))
			},
			lerp: endpointLerp(func(a, b T, t float64) T {
				return setInt[T](int64(blendInt(float64(valueOf(a).Int()), float64(valueOf(b).Int()), t)))
			}),
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ops[T]{
			add: func(a, b T) T { return setUint[T](valueOf(a).Uint() + valueOf(b).Uint()) },
			sub: func(a, b T) T { return setUint[T](valueOf(a).Uint() - valueOf(b).Uint()) },
			scale: func(v T, s float64) T {
				return setUint[T](uint64(math.Round(float64(valueOf(v).Uint()) * s)))
			},
			lerp: endpointLerp(func(a, b T, t float64) T {
				return setUint[T](uint64(blendInt(float64(valueOf(a).Uint()), float64(valueOf(b).Uint()), t)))
			}),
		}, true
	}
	return Ops[T]{}, false
}

// blendInt is a + (b-a)*t rounded to the nearest integer.
func blendInt(a, b, t float64) float64 {
	return math.Round(a + (b-a)*t)
}

// endpointLerp returns the endpoints exactly, which float64 cannot hold for
// the widest integers.
func endpointLerp[T any](lerp func(a, b T, t float64) T) func(a, b T, t float64) T {
	return func(a, b T, t float64) T {
		switch t {
		case 0:
			return a
		case 1:
			return b
		}
		return lerp(a, b, t)
	}
}

func valueOf[T any](v T) reflect.Value {
	return reflect.ValueOf(&v).Elem()
}

func setFloat[T any](f float64) T {
	var out T
	reflect.ValueOf(&out).Elem().SetFloat(f)
	return out
}

func setInt[T any](i int64) T {
	var out T
	reflect.ValueOf(&out).Elem().SetInt(i)
	return out
}

func setUint[T any](u uint64) T {
	var out T
	reflect.ValueOf(&out).Elem().SetUint(u)
	return out
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
