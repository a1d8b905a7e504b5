package core

// Event represents a game event
type Event struct {
	Type    EventType
	Field   int // index of the field that raised it
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtAlienSpawned EventType = iota
	EvtShotFired
	EvtAlienKilled
	EvtScreenCleared
	EvtUpgradeOffered
	EvtUpgradeApplied
	EvtMilestone
	EvtHealthBoost
	EvtPlayerLost
	EvtMatchWon
	EvtMatchReset
)

// KillInfo is the payload of EvtAlienKilled
type KillInfo struct {
	X, Y   float64
	Points int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Handlers may emit; those events
// wait for the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
