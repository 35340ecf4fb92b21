package tween

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateEndpoints(t *testing.T) {
	floats := NumberOps[float64]()
	ints := NumberOps[int]()
	vecs := MustDerive[cp.Vector]()

	cases := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"float64", func(t *testing.T) {
			assert.Equal(t, -3.5, Interpolate(-3.5, 12.25, 0, floats))
			assert.Equal(t, 12.25, Interpolate(-3.5, 12.25, 1, floats))
		}},
		{"int", func(t *testing.T) {
			assert.Equal(t, 7, Interpolate(7, -40, 0, ints))
			assert.Equal(t, -40, Interpolate(7, -40, 1, ints))
		}},
		{"vector", func(t *testing.T) {
			a, b := cp.Vector{X: 1, Y: 2}, cp.Vector{X: -4, Y: 10}
			assert.Equal(t, a, Interpolate(a, b, 0, vecs))
			assert.Equal(t, b, Interpolate(a, b, 1, vecs))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, c.check)
	}
}

func TestInterpolateIsAffineInT(t *testing.T) {
	ops := NumberOps[float64]()
	start, end := 2.0, 18.0

	for _, tt := range []struct{ t1, t2 float64 }{
		{0.1, 0.2},
		{0.5, 0.25},
		{-0.5, 0.75},
		{1.2, 0.3},
	} {
		got := Interpolate(start, end, tt.t1+tt.t2, ops)
		want := start + (end-start)*(tt.t1+tt.t2)
		assert.InDelta(t, want, got, 1e-9)

		// f(t1+t2) - f(0) == (f(t1) - f(0)) + (f(t2) - f(0))
		f0 := Interpolate(start, end, 0, ops)
		sum := Interpolate(start, end, tt.t1, ops) - f0 + Interpolate(start, end, tt.t2, ops) - f0
		assert.InDelta(t, got-f0, sum, 1e-9)
	}
}

func TestInterpolateExtrapolates(t *testing.T) {
	ops := NumberOps[float64]()
	assert.InDelta(t, 15.0, Interpolate(0.0, 10.0, 1.5, ops), 1e-9)
	assert.InDelta(t, -5.0, Interpolate(0.0, 10.0, -0.5, ops), 1e-9)
}

func TestInterpolateEasedUsesCurve(t *testing.T) {
	ops := NumberOps[float64]()
	assert.InDelta(t, 2.5, InterpolateEased(0.0, 10.0, 0.5, InQuad, ops), 1e-9)
	assert.InDelta(t, 5.0, InterpolateEased(0.0, 10.0, 0.5, nil, ops), 1e-9)

	overshoot := InterpolateEased(0.0, 10.0, 0.7, OutBack, ops)
	assert.Greater(t, overshoot, 10.0)
}

func TestIntegerScaleRounds(t *testing.T) {
	assert.Equal(t, 3, Interpolate(0, 10, 0.25, NumberOps[int]()))
	assert.Equal(t, 3, Interpolate(0, 10, 0.25, MustDerive[int]()))
}

func TestUnsignedInterpolatesDownward(t *testing.T) {
	assert.Equal(t, uint8(5), Interpolate(uint8(10), uint8(0), 0.5, NumberOps[uint8]()))
	assert.Equal(t, uint8(5), Interpolate(uint8(10), uint8(0), 0.5, MustDerive[uint8]()))
	assert.Equal(t, uint(25), Interpolate(uint(100), uint(0), 0.75, MustDerive[uint]()))

	cases := []struct {
		name       string
		start, end uint8
		t          float64
		want       uint8
	}{
		{"up_0_200", 0, 200, 0.5, 100},
		{"down_200_0", 200, 0, 0.5, 100},
		{"up_0_255", 0, 255, 0.5, 128},
		{"down_255_0_quarter", 255, 0, 0.25, 191},
		{"full_range_end", 0, 255, 1, 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Interpolate(c.start, c.end, c.t, NumberOps[uint8]()))
			assert.Equal(t, c.want, Interpolate(c.start, c.end, c.t, MustDerive[uint8]()))
		})
	}
}

func TestNarrowSignedDoesNotWrap(t *testing.T) {
	assert.Equal(t, int8(0), Interpolate(int8(-100), int8(100), 0.5, NumberOps[int8]()))
	assert.Equal(t, int8(0), Interpolate(int8(-100), int8(100), 0.5, MustDerive[int8]()))
	assert.Equal(t, int8(-128), Interpolate(int8(127), int8(-128), 1, NumberOps[int8]()))
	assert.Equal(t, int16(30000), Interpolate(int16(-30000), int16(30000), 1, MustDerive[int16]()))
	assert.Equal(t, int16(15000), Interpolate(int16(-30000), int16(30000), 0.75, MustDerive[int16]()))
}

func TestWideIntegerEndpointsExact(t *testing.T) {
	const big = uint64(1)<<63 + 10
	assert.Equal(t, uint64(0), Interpolate(uint64(0), big, 0, NumberOps[uint64]()))
	assert.Equal(t, big, Interpolate(uint64(0), big, 1, NumberOps[uint64]()))
	assert.Equal(t, big, Interpolate(uint64(0), big, 1, MustDerive[uint64]()))
	assert.InDelta(t, float64(big)/2, float64(Interpolate(uint64(0), big, 0.5, NumberOps[uint64]())), 1e4)
}

func TestNewOpsRequiresEveryOperation(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }
	sub := func(a, b float64) float64 { return a - b }
	scale := func(v, s float64) float64 { return v * s }

	cases := []struct {
		name  string
		add   func(a, b float64) float64
		sub   func(a, b float64) float64
		scale func(v, s float64) float64
		op    string
	}{
		{"no_add", nil, sub, scale, "add"},
		{"no_sub", add, nil, scale, "subtract"},
		{"no_scale", add, sub, nil, "scale"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewOps(c.add, c.sub, c.scale)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingOperation))
			var missing *MissingOperationError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, c.op, missing.Op)
			assert.Equal(t, "float64", missing.Type)
		})
	}

	ops, err := NewOps(add, sub, scale)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, Interpolate(0.0, 10.0, 0.5, ops), 1e-9)
}

func TestNewNegOpsSubtractsByNegation(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }
	neg := func(v float64) float64 { return -v }
	scale := func(v, s float64) float64 { return v * s }

	ops, err := NewNegOps(add, neg, scale)
	require.NoError(t, err)
	for _, pair := range [][2]float64{{3, 1}, {-2, 5}, {0, 0}, {1.5, -7.25}} {
		assert.Equal(t, add(pair[0], neg(pair[1])), ops.Sub(pair[0], pair[1]))
	}

	_, err = NewNegOps(add, nil, scale)
	assert.ErrorIs(t, err, ErrMissingOperation)
}

func TestZeroOpsFailsValidation(t *testing.T) {
	var ops Ops[float64]
	assert.ErrorIs(t, ops.Validate(), ErrMissingOperation)

	_, err := NewConfig(ops)
	assert.ErrorIs(t, err, ErrMissingOperation)
}
