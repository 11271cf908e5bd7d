package chaos

// Event is an input event for Engine.Handle.
type Event interface {
	isEvent()
}

// PointClicked is a click on the drawing surface. Its meaning depends on the
// current State.
type PointClicked struct {
	X, Y float64
}

// FinalizeRequested asks to close the polygon and move to start selection.
type FinalizeRequested struct{}

// ResetRequested asks to clear everything and start over.
type ResetRequested struct{}

// AdvanceRequested asks to run the configured number of steps.
type AdvanceRequested struct{}

func (PointClicked) isEvent()      {}
func (FinalizeRequested) isEvent() {}
func (ResetRequested) isEvent()    {}
func (AdvanceRequested) isEvent()  {}

// EventType identifies notifications emitted by the engine.
type EventType int

const (
	EventStateChanged    EventType = iota // data: State
	EventCornerAdded                      // data: geometry.Point
	EventStartSet                         // data: geometry.Point
	EventPointsGenerated                  // data: []geometry.Point
	EventReset                            // data: nil
)

// Listener is called when an event occurs.
type Listener func(data interface{})

// On registers a listener for the specified event type. Listeners run
// synchronously, in registration order, on the goroutine that drives the engine.
func (e *Engine) On(event EventType, listener Listener) {
	e.listeners[event] = append(e.listeners[event], listener)
}

func (e *Engine) emit(event EventType, data interface{}) {
	for _, listener := range e.listeners[event] {
		listener(data)
	}
}
