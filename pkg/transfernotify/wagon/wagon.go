// Package wagon hosts the transfer side of a publishing pipeline: it
// owns the object-store connection, bucket, and key-prefix convention,
// performs uploads, and dispatches transfer lifecycle events to
// registered listeners.
package wagon

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tendant/transfer-notify/pkg/transfernotify"
)

// ObjectStore uploads content to a storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, reader io.Reader) error
}

// Wagon uploads resources and fires transfer-completed events once
// each upload finishes. Listener errors propagate to the caller of
// Put, which decides whether they fail the transfer.
type Wagon struct {
	store      ObjectStore
	bucket     string
	keyPrefix  string
	dispatcher *transfernotify.Dispatcher
}

// New creates a wagon bound to a bucket and key prefix.
func New(store ObjectStore, bucket, keyPrefix string) (*Wagon, error) {
	if store == nil {
		return nil, errors.New("wagon: object store is required")
	}
	if bucket == "" {
		return nil, errors.New("wagon: bucket is required")
	}
	return &Wagon{
		store:      store,
		bucket:     bucket,
		keyPrefix:  keyPrefix,
		dispatcher: transfernotify.NewDispatcher(),
	}, nil
}

// AddListener registers a transfer listener. Listeners are invoked in
// registration order.
func (w *Wagon) AddListener(l transfernotify.TransferListener) {
	w.dispatcher.AddListener(l)
}

// Bucket returns the bucket this wagon publishes to.
func (w *Wagon) Bucket() string { return w.bucket }

// KeyPrefix returns the key prefix prepended to resource names.
func (w *Wagon) KeyPrefix() string { return w.keyPrefix }

// Put uploads the resource under keyPrefix+name and fires a
// transfer-completed event. The first listener error is returned.
func (w *Wagon) Put(ctx context.Context, reader io.Reader, name string, size int64) error {
	key := w.keyPrefix + name
	w.dispatcher.FireDebug("Uploading " + name + " to " + key)

	if err := w.store.Upload(ctx, w.bucket, key, reader); err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}

	return w.dispatcher.FireTransferCompleted(ctx, transfernotify.NewTransferEvent(transfernotify.Resource{
		Name: name,
		Size: size,
	}))
}
