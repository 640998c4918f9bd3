package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact raised by an aggregate and fanned out by the Dispatcher.
// Fields returns extra key/value pairs for structured logs.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
	Fields() []interface{}
}

// BaseEvent carries the envelope shared by every event. Concrete events embed
// it and add their own payload and Fields.
type BaseEvent struct {
	id        string
	kind      string
	at        time.Time
	aggregate string
}

// NewBaseEvent stamps a fresh envelope for an event of kind about aggregate
func NewBaseEvent(kind, aggregate string) BaseEvent {
	return BaseEvent{
		id:        uuid.NewString(),
		kind:      kind,
		at:        time.Now().UTC(),
		aggregate: aggregate,
	}
}

func (e BaseEvent) EventID() string       { return e.id }
func (e BaseEvent) EventType() string     { return e.kind }
func (e BaseEvent) OccurredAt() time.Time { return e.at }
func (e BaseEvent) AggregateID() string   { return e.aggregate }

// logArgs flattens the envelope and the event payload into hclog key/value pairs
func logArgs(e DomainEvent) []interface{} {
	args := []interface{}{"type", e.EventType(), "aggregate", e.AggregateID(), "event_id", e.EventID()}
	return append(args, e.Fields()...)
}
