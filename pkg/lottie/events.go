package lottie

// EventName names an engine event.
type EventName string

const (
	EventComplete     EventName = "complete"
	EventLoopComplete EventName = "loopComplete"
	EventEnterFrame   EventName = "enterFrame"
	EventSegmentStart EventName = "segmentStart"
	EventConfigReady  EventName = "config_ready"
	EventDataReady    EventName = "data_ready"
	EventDataFailed   EventName = "data_failed"
	EventDOMLoaded    EventName = "DOMLoaded"
	EventDestroy      EventName = "destroy"
)

// Event is delivered to listeners.
type Event struct {
	Type EventName
	// CurrentFrame is relative to the start of the active segment.
	CurrentFrame float64
	// TotalFrames is the length of the active segment.
	TotalFrames float64
	Direction   Direction
	// Target is the identity passed to Destroy, on destroy events.
	Target string
}

// Callback is a listener handle. Engines compare callbacks by pointer, so
// the same *Callback must be used to add and remove a listener.
type Callback struct {
	fn func(Event)
}

// NewCallback wraps fn in a new handle.
func NewCallback(fn func(Event)) *Callback {
	return &Callback{fn: fn}
}

// Invoke calls the wrapped function. A nil handle or function is ignored.
func (c *Callback) Invoke(e Event) {
	if c == nil || c.fn == nil {
		return
	}
	c.fn(e)
}

// EventListener pairs an event name with a callback.
type EventListener struct {
	Name     EventName
	Callback *Callback
}

// On is shorthand for an EventListener with a fresh callback.
func On(name EventName, fn func(Event)) EventListener {
	return EventListener{Name: name, Callback: NewCallback(fn)}
}
