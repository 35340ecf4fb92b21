package tween

import (
	"slices"
	"sort"

	"github.com/milk9111/tween/common"
)

// Keyframe is one point of an animation curve. Tangents are slopes in
// value per unit of time.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Keyframes is a piecewise cubic Hermite curve through sorted keys. Outside
// the key range it holds the first or last value.
type Keyframes struct {
	keys []Keyframe
}

// NewKeyframes sorts keys by time and builds a curve using their tangents
// as given.
func NewKeyframes(keys ...Keyframe) (*Keyframes, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeyframes
	}
	sorted := slices.Clone(keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Keyframes{keys: sorted}, nil
}

// SmoothKeyframes is NewKeyframes with Catmull-Rom style tangents: interior
// keys take the slope between their neighbours, end keys the slope of their
// only segment.
func SmoothKeyframes(keys ...Keyframe) (*Keyframes, error) {
	k, err := NewKeyframes(keys...)
	if err != nil {
		return nil, err
	}
	n := len(k.keys)
	if n < 2 {
		return k, nil
	}
	for i := range k.keys {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi >= n {
			hi = n - 1
		}
		a, b := k.keys[lo], k.keys[hi]
		slope := 0.0
		if b.Time != a.Time {
			slope = (b.Value - a.Value) / (b.Time - a.Time)
		}
		k.keys[i].InTangent = slope
		k.keys[i].OutTangent = slope
	}
	return k, nil
}

// LinearKeyframes returns the two-key curve equivalent to Linear.
func LinearKeyframes() *Keyframes {
	k, _ := NewKeyframes(
		Keyframe{Time: 0, Value: 0, OutTangent: 1},
		Keyframe{Time: 1, Value: 1, InTangent: 1},
	)
	return k
}

// Keys returns a copy of the sorted keys.
func (k *Keyframes) Keys() []Keyframe {
	if k == nil {
		return nil
	}
	return slices.Clone(k.keys)
}

func (k *Keyframes) Evaluate(t float64) float64 {
	if k == nil || len(k.keys) == 0 {
		return t
	}
	first, last := k.keys[0], k.keys[len(k.keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	// first key strictly after t
	i := sort.Search(len(k.keys), func(i int) bool { return k.keys[i].Time > t })
	a, b := k.keys[i-1], k.keys[i]
	dt := b.Time - a.Time
	if dt <= 0 {
		return b.Value
	}
	return hermite(a.Value, a.OutTangent*dt, b.Value, b.InTangent*dt, common.InverseLerp(a.Time, b.Time, t))
}

func hermite(p0, m0, p1, m1, s float64) float64 {
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

var _ Curve = (*Keyframes)(nil)
