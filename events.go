package voronoi

import "github.com/planarfield/voronoi/dcel"

// EventType identifies the kind of lifecycle event an insertion can
// emit, mirroring the teacher's trigger.go EventType/Event pattern
// (TRIGGER_ENTER, COLLISION_ENTER, ...) adapted from collision
// lifecycle to insertion lifecycle.
type EventType uint8

const (
	EventSiteInserted EventType = iota
	EventSiteRejected
	EventFaceRepaired
	EventVertexSplit
)

// Event is the common interface every emitted event satisfies.
type Event interface {
	Type() EventType
}

// SiteInsertedEvent fires once an insertion completes successfully.
type SiteInsertedEvent struct {
	Face      dcel.FaceHandle
	NumNew    int // vertices created by this insertion
	NumRepair int // faces repaired by this insertion
}

func (e SiteInsertedEvent) Type() EventType { return EventSiteInserted }

// SiteRejectedEvent fires when an insertion is rolled back after the
// seed search or the positioner fails (ErrPredicateUndecidable,
// ErrPositionerFailed). Input rejected up front with ErrInvalidSite
// emits no event.
type SiteRejectedEvent struct {
	Err error
}

func (e SiteRejectedEvent) Type() EventType { return EventSiteRejected }

// FaceRepairedEvent fires once per face spliced during repair_face.
type FaceRepairedEvent struct {
	Face dcel.FaceHandle
}

func (e FaceRepairedEvent) Type() EventType { return EventFaceRepaired }

// VertexSplitEvent fires when add_split_vertex inserts an extra vertex
// to resolve a degenerate collinear bisector.
type VertexSplitEvent struct {
	Vertex dcel.VertexHandle
}

func (e VertexSplitEvent) Type() EventType { return EventVertexSplit }

// EventListener is a callback subscribed against one EventType.
type EventListener func(Event)

// Events is the diagram's listener registry and per-insertion buffer,
// flushed once an insertion's outcome (success or rollback) is known —
// the same buffer-then-flush shape as the teacher's Events.flush,
// simplified since a diagram has no concurrent substeps to reconcile.
type Events struct {
	listeners map[EventType][]EventListener
	buffer    []Event
}

// NewEvents returns an empty event registry.
func NewEvents() Events {
	return Events{listeners: make(map[EventType][]EventListener)}
}

// Subscribe registers listener to be called for every event of type t.
func (e *Events) Subscribe(t EventType, listener EventListener) {
	e.listeners[t] = append(e.listeners[t], listener)
}

func (e *Events) emit(ev Event) {
	e.buffer = append(e.buffer, ev)
}

// flush dispatches every buffered event to its listeners and clears the
// buffer, called once at the end of each insertion attempt.
func (e *Events) flush() {
	for _, ev := range e.buffer {
		for _, listener := range e.listeners[ev.Type()] {
			listener(ev)
		}
	}
	e.buffer = e.buffer[:0]
}
