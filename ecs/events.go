package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventPlayerEnemyContact carries a ContactEvent for a touching
	// player/enemy pair, at most once per enemy per physics step.
	EventPlayerEnemyContact = "player_enemy_contact"
	// EventRoundWon and EventRoundLost end the current playthrough.
	EventRoundWon  = "round_won"
	EventRoundLost = "round_lost"
)

// ContactEvent is emitted by the physics step for a touching pair.
type ContactEvent struct {
	Player Entity
	Other  Entity
}

// EventQueue is a simple FIFO queue.
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

// Each visits queued events of the given type without consuming them.
func (q *EventQueue) Each(eventType string, fn func(Event)) {
	if q == nil || fn == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == eventType {
			fn(evt)
		}
	}
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
