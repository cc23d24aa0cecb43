package observability

import "sync"

// NoOpObserver discards every event.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Multi fans each event out to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	list := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}

// Recorder keeps every event it receives. Handy in tests and for
// inspecting a store's traffic while debugging.
type Recorder struct {
	mu     sync.Mutex
	events []OperationContext
}

// ObserveOperation appends ctx to the recorded events.
func (r *Recorder) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ctx)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OperationContext, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
