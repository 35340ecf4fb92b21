package tween

// Sequence runs runners one after another. Each tick goes to the current
// runner only; time left over when a runner finishes is not carried into
// the next one.
type Sequence struct {
	runners []Runner
	current int
	state   State
}

func NewSequence(runners ...Runner) *Sequence {
	kept := make([]Runner, 0, len(runners))
	for _, r := range runners {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &Sequence{runners: kept}
}

func (q *Sequence) Tick(dt float64) bool {
	if q == nil {
		return true
	}
	if q.state == StateCompleted || q.state == StateCancelled {
		return true
	}
	q.state = StateRunning
	if q.current >= len(q.runners) {
		q.state = StateCompleted
		return true
	}
	if q.runners[q.current].Tick(dt) {
		q.current++
		if q.current >= len(q.runners) {
			q.state = StateCompleted
			return true
		}
	}
	return false
}

// Cancel cancels the current runner and every runner after it.
func (q *Sequence) Cancel() {
	if q == nil || q.state == StateCompleted || q.state == StateCancelled {
		return
	}
	for i := q.current; i < len(q.runners); i++ {
		q.runners[i].Cancel()
	}
	q.state = StateCancelled
}

func (q *Sequence) State() State {
	if q == nil {
		return StateCancelled
	}
	return q.state
}

// Delay is a runner that outputs nothing and completes once seconds have
// elapsed.
type Delay struct {
	remaining float64
	state     State
}

func NewDelay(seconds float64) *Delay {
	return &Delay{remaining: seconds}
}

func (d *Delay) Tick(dt float64) bool {
	if d == nil {
		return true
	}
	if d.state == StateCompleted || d.state == StateCancelled {
		return true
	}
	d.state = StateRunning
	if dt > 0 {
		d.remaining -= dt
	}
	if d.remaining <= 0 {
		d.state = StateCompleted
		return true
	}
	return false
}

func (d *Delay) Cancel() {
	if d == nil || d.state == StateCompleted {
		return
	}
	d.state = StateCancelled
}

func (d *Delay) State() State {
	if d == nil {
		return StateCancelled
	}
	return d.state
}

var (
	_ Runner = (*Session[float64])(nil)
	_ Runner = (*Sequence)(nil)
	_ Runner = (*Delay)(nil)
)
