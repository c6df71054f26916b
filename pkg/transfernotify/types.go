package transfernotify

import (
	"time"

	"github.com/google/uuid"
)

// Resource describes a single artifact tracked by a transfer. Name is
// the relative path of the object within the pipeline's key prefix.
type Resource struct {
	Name string
	Size int64
}

// TransferEvent is fired once per finished transfer. It is consumed
// synchronously by listeners and discarded afterwards.
type TransferEvent struct {
	ID        uuid.UUID
	Resource  Resource
	Timestamp time.Time
}

// NewTransferEvent creates an event for the given resource, stamped
// with the current time.
func NewTransferEvent(resource Resource) *TransferEvent {
	return &TransferEvent{
		ID:        uuid.New(),
		Resource:  resource,
		Timestamp: time.Now(),
	}
}
