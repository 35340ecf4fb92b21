package tween

import "github.com/milk9111/tween/common"

type State uint8

const (
	StatePending State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Runner is a tick-driven process. Tick reports whether the runner is done.
type Runner interface {
	Tick(dt float64) bool
	Cancel()
	State() State
}

// Session is one timed interpolation from start to end. The host advances
// it with Tick once per frame; nothing in a session blocks or runs on its
// own.
//
// Every tick that leaves elapsed below duration outputs the value at
// elapsed/duration. The tick that reaches or passes duration instead outputs
// the value at t = 1 exactly once and completes, so frame overshoot never
// reports progress past the end. A duration of zero or less skips the
// running phase: Start outputs the end value and completes.
type Session[T any] struct {
	cfg      Config[T]
	start    T
	end      T
	duration float64
	elapsed  float64
	state    State
	output   func(T)
}

func NewSession[T any](cfg Config[T], start, end T, duration float64, output func(T)) (*Session[T], error) {
	if output == nil {
		return nil, ErrNilOutput
	}
	if err := cfg.ops.Validate(); err != nil {
		return nil, err
	}
	return &Session[T]{
		cfg:      cfg,
		start:    start,
		end:      end,
		duration: duration,
		output:   output,
	}, nil
}

// Start moves a pending session to running. It is a no-op otherwise.
func (s *Session[T]) Start() {
	if s == nil || s.state != StatePending {
		return
	}
	s.state = StateRunning
	if s.duration <= 0 {
		s.finish()
	}
}

// Tick advances elapsed time by dt and emits one output. Negative dt counts
// as zero. A pending session is started first. Ticks after completion or
// cancellation do nothing.
func (s *Session[T]) Tick(dt float64) bool {
	if s == nil {
		return true
	}
	if s.state == StatePending {
		s.Start()
	}
	if s.state != StateRunning {
		return true
	}

	if dt > 0 {
		s.elapsed += dt
	}
	if s.elapsed < s.duration {
		s.output(s.cfg.Interpolate(s.start, s.end, s.elapsed/s.duration))
		return false
	}
	s.finish()
	return true
}

// Cancel stops the session without a final output.
func (s *Session[T]) Cancel() {
	if s == nil {
		return
	}
	if s.state == StatePending || s.state == StateRunning {
		s.state = StateCancelled
	}
}

func (s *Session[T]) finish() {
	s.state = StateCompleted
	s.output(s.cfg.Interpolate(s.start, s.end, 1))
}

func (s *Session[T]) State() State {
	if s == nil {
		return StateCancelled
	}
	return s.state
}

func (s *Session[T]) Done() bool {
	st := s.State()
	return st == StateCompleted || st == StateCancelled
}

func (s *Session[T]) Elapsed() float64 {
	if s == nil {
		return 0
	}
	return s.elapsed
}

func (s *Session[T]) Duration() float64 {
	if s == nil {
		return 0
	}
	return s.duration
}

// Progress is elapsed/duration clamped to [0, 1]. Completed sessions report
// 1 regardless of duration.
func (s *Session[T]) Progress() float64 {
	if s == nil {
		return 0
	}
	if s.state == StateCompleted {
		return 1
	}
	if s.duration <= 0 {
		return 0
	}
	return common.Clamp01(s.elapsed / s.duration)
}
