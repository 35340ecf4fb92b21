package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		t.Run(name, func(t *testing.T) {
			c, ok := EasingByName(name)
			require.True(t, ok)
			assert.InDelta(t, 0.0, c.Evaluate(0), 1e-9)
			assert.InDelta(t, 1.0, c.Evaluate(1), 1e-9)
		})
	}
}

func TestEasingByName(t *testing.T) {
	c, ok := EasingByName("In-Out-Quad")
	require.True(t, ok)
	assert.InDelta(t, InOutQuad.Evaluate(0.3), c.Evaluate(0.3), 1e-12)

	c, ok = EasingByName("")
	require.True(t, ok)
	assert.Equal(t, 0.25, c.Evaluate(0.25))

	_, ok = EasingByName("wobble")
	assert.False(t, ok)
}

func TestCurveCombinators(t *testing.T) {
	cases := []struct {
		name  string
		curve Curve
		t     float64
		want  float64
	}{
		{"reverse_in_quad_is_out_quad", Reverse(InQuad), 0.5, OutQuad.Evaluate(0.5)},
		{"mirror_peak", Mirror(Linear), 0.5, 1},
		{"mirror_rising", Mirror(Linear), 0.25, 0.5},
		{"mirror_falling", Mirror(Linear), 0.75, 0.5},
		{"power_two", Power(2), 0.5, 0.25},
		{"power_one_linear", Power(1), 0.3, 0.3},
		{"steps_floor", Steps(4), 0.3, 0.25},
		{"steps_end", Steps(4), 1, 1},
		{"steps_zero_linear", Steps(0), 0.3, 0.3},
		{"reverse_nil_linear", Reverse(nil), 0.4, 0.4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.curve.Evaluate(c.t), 1e-9)
		})
	}
}

func TestOvershootingEasings(t *testing.T) {
	assert.Less(t, InBack.Evaluate(0.2), 0.0)
	assert.Greater(t, OutBack.Evaluate(0.7), 1.0)
	assert.Greater(t, OutElastic.Evaluate(0.1), 1.0)
}
