// Package tween blends two values of any type over time. Arithmetic is
// supplied as an Ops bundle, easing as a Curve, and timed runs are Sessions
// advanced by the host once per tick.
package tween
