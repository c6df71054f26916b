package transfernotify

import "errors"

var (
	// ErrNilStorageContext is returned when a notifier is constructed
	// without a storage context.
	ErrNilStorageContext = errors.New("transfernotify: nil storage context")

	// ErrNilSigner is returned when the storage context carries no
	// URL signer.
	ErrNilSigner = errors.New("transfernotify: storage context has no signer")

	// ErrNilEvent is returned when a nil transfer event is dispatched.
	ErrNilEvent = errors.New("transfernotify: nil transfer event")
)
