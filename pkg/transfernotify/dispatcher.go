package transfernotify

import "context"

// Dispatcher fans transfer lifecycle callbacks out to registered
// listeners in registration order. Registration is not synchronized;
// add all listeners before the pipeline starts firing events.
type Dispatcher struct {
	listeners []TransferListener
}

// NewDispatcher creates a dispatcher with the given listeners.
func NewDispatcher(listeners ...TransferListener) *Dispatcher {
	return &Dispatcher{listeners: listeners}
}

// AddListener registers a listener. Nil listeners are ignored.
func (d *Dispatcher) AddListener(l TransferListener) {
	if l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

// FireTransferCompleted invokes TransferCompleted on each listener in
// order, stopping at and returning the first error.
func (d *Dispatcher) FireTransferCompleted(ctx context.Context, event *TransferEvent) error {
	if event == nil {
		return ErrNilEvent
	}
	for _, l := range d.listeners {
		if err := l.TransferCompleted(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// FireDebug forwards a diagnostic message to every listener.
func (d *Dispatcher) FireDebug(message string) {
	for _, l := range d.listeners {
		l.Debug(message)
	}
}
