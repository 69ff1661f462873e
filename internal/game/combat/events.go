package combat

import "github.com/udisondev/skirmish/internal/model"

// EventType — occurrences the resolution pipeline can report to the
// surrounding turn engine.
type EventType int32

const (
	EventArmourGap EventType = iota
	EventArmourDeflected
	EventArmourDestroyed
	EventWound
	EventSevered
	EventArteryHit
)

// String returns human-readable event type name.
func (t EventType) String() string {
	switch t {
	case EventArmourGap:
		return "ArmourGap"
	case EventArmourDeflected:
		return "ArmourDeflected"
	case EventArmourDestroyed:
		return "ArmourDestroyed"
	case EventWound:
		return "Wound"
	case EventSevered:
		return "Severed"
	case EventArteryHit:
		return "ArteryHit"
	default:
		return "Unknown"
	}
}

// Event — one reported occurrence. Layer is meaningful for armour events,
// Severity for wound events.
type Event struct {
	Type     EventType
	Part     model.PartIndex
	Layer    model.ClothingLayer
	Severity model.Severity
}

// EventSink receives resolution events. The core never buffers: each event
// is emitted as it happens, in resolution order.
type EventSink interface {
	Emit(e Event)
}

// EventList — EventSink that records everything, for tests and replays.
type EventList struct {
	Events []Event
}

// Emit appends the event.
func (l *EventList) Emit(e Event) {
	l.Events = append(l.Events, e)
}

// emit forwards to the sink when one is attached.
func emit(sink EventSink, e Event) {
	if sink != nil {
		sink.Emit(e)
	}
}
