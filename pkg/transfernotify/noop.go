package transfernotify

import "context"

// NoopListener is a no-operation implementation of TransferListener.
// Useful when a pipeline slot requires a listener but no action is
// wanted.
type NoopListener struct{}

// NewNoopListener creates a new no-operation listener.
func NewNoopListener() TransferListener {
	return &NoopListener{}
}

// TransferCompleted does nothing and returns nil.
func (n *NoopListener) TransferCompleted(ctx context.Context, event *TransferEvent) error {
	return nil
}

// Debug does nothing.
func (n *NoopListener) Debug(message string) {}
