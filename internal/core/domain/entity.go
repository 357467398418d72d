package domain

import (
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
)

// now is the clock used for every timestamp the domain stamps. Always UTC.
var now = func() time.Time { return time.Now().UTC() }

// Entity is anything identified by a UUID rather than by its attributes.
type Entity interface {
	ID() uuid.UUID
}

// SameEntity reports whether a and b are the same kind of entity with the same identity.
func SameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.ID() == b.ID()
}

// AggregateRoot is an entity that owns a consistency boundary and buffers the events it raises.
type AggregateRoot interface {
	Entity
	DomainEvents() []Event
	ClearDomainEvents()
	Version() int64
}

// aggregateRoot holds the state shared by every aggregate: pending events and the
// persistence version used for optimistic locking. Neither is part of the business state.
type aggregateRoot struct {
	events  []Event
	version int64
}

// DomainEvents returns the events raised since the last clear, oldest first.
func (a *aggregateRoot) DomainEvents() []Event {
	return slices.Clone(a.events)
}

// ClearDomainEvents drops the buffered events. Called by the dispatcher after publishing.
func (a *aggregateRoot) ClearDomainEvents() {
	a.events = nil
}

func (a *aggregateRoot) Version() int64 {
	return a.version
}

// SetVersion records the version a repository adapter just wrote.
func (a *aggregateRoot) SetVersion(v int64) {
	a.version = v
}

func (a *aggregateRoot) raise(e Event) {
	a.events = append(a.events, e)
}
