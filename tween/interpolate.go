package tween

// Interpolate returns start + (end - start) * t. t is not clamped: values
// outside [0, 1] extrapolate along the same line.
//
// ops must come from NewOps, NewNegOps, Derive, NumberOps or AffineOps.
func Interpolate[T any](start, end T, t float64, ops Ops[T]) T {
	if ops.lerp != nil {
		return ops.lerp(start, end, t)
	}
	delta := ops.Sub(end, start)
	scaled := ops.Scale(delta, t)
	return ops.Add(scaled, start)
}

// InterpolateEased is Interpolate at curve.Evaluate(t). A nil curve is
// linear.
func InterpolateEased[T any](start, end T, t float64, curve Curve, ops Ops[T]) T {
	if curve == nil {
		return Interpolate(start, end, t, ops)
	}
	return Interpolate(start, end, curve.Evaluate(t), ops)
}
