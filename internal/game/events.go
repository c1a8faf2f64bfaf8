package game

// EventType enumerates what a match reports to its subscribers.
type EventType int

const (
	EventTurn EventType = iota
	EventViewChanged
	EventStep
	EventCrash
	EventFinished
)

// Event is emitted synchronously from Update. Player is 1 or 2 for events tied
// to a cycle and carries the winner for EventFinished.
type Event struct {
	Type   EventType
	Player int
	Frame  int
}

type EventHandler func(Event)

// EventBus fans match events out to hosts (audio, scores, spectators).
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for _, t := range []EventType{EventTurn, EventViewChanged, EventStep, EventCrash, EventFinished} {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
