package snowscene

import (
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/mesh"
)

const (
	FIGURE_MOVED EventType = iota
	FIGURE_SCALED
	FIGURE_REPOSITIONED
	FIGURE_RESET
	RENDER_MODE_CHANGED
	CAMERA_RESET
	CLOSE_REQUESTED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Figure events
type FigureMovedEvent struct {
	Placement figure.Placement
}

func (e FigureMovedEvent) Type() EventType { return FIGURE_MOVED }

type FigureScaledEvent struct {
	Scale float64
}

func (e FigureScaledEvent) Type() EventType { return FIGURE_SCALED }

type FigureRepositionedEvent struct {
	Placement figure.Placement
}

func (e FigureRepositionedEvent) Type() EventType { return FIGURE_REPOSITIONED }

type FigureResetEvent struct{}

func (e FigureResetEvent) Type() EventType { return FIGURE_RESET }

// RenderModeChangedEvent is only sent when the mode actually differs
type RenderModeChangedEvent struct {
	From mesh.Topology
	To   mesh.Topology
}

func (e RenderModeChangedEvent) Type() EventType { return RENDER_MODE_CHANGED }

type CameraResetEvent struct{}

func (e CameraResetEvent) Type() EventType { return CAMERA_RESET }

// CloseRequestedEvent is sent once, on the step the exit action is first seen
type CloseRequestedEvent struct{}

func (e CloseRequestedEvent) Type() EventType { return CLOSE_REQUESTED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// SubscribeAll adds a listener for every event type
func (e *Events) SubscribeAll(listener EventListener) {
	for t := FIGURE_MOVED; t <= CLOSE_REQUESTED; t++ {
		e.Subscribe(t, listener)
	}
}

// emit buffers an event until the next flush
func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
