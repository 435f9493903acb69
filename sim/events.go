package sim

// CollisionEvent records that a dynamic body took part in a collision this
// tick. One event is emitted per dynamic body per resolved contact.
type CollisionEvent struct {
	Body  *Body
	Other *Body
}

// EventQueue is a simple FIFO queue drained once per tick by the deformation
// controller.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
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
