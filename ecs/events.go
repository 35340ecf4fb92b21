package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventTweenCompleted = "tween_completed"

// TweenCompletedEvent is pushed when a tween reaches its end value.
// Cancelled tweens push nothing.
type TweenCompletedEvent struct {
	Entity   Entity
	Name     string
	Spec     string
	Reversed bool
}

// EventQueue is a simple FIFO queue. The world flushes it after every
// update, so events live for the rest of the frame they were pushed in.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns queued events of the given type without consuming them.
func (q *EventQueue) Peek(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
