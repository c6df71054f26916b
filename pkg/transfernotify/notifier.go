package transfernotify

import (
	"context"
	"time"
)

// PresignedURLNotifier generates presigned URLs for successful
// transfers and reports them through the logging channel. It is
// stateless across invocations beyond its immutable configuration, so
// concurrent TransferCompleted calls need no coordination.
type PresignedURLNotifier struct {
	store         *StorageContext
	hoursToExpire int
	log           Logger
	clock         Clock
}

// NotifierOption configures a PresignedURLNotifier.
type NotifierOption func(*PresignedURLNotifier)

// WithLogger sets the logging channel. Default is a slog-backed
// logger using slog.Default().
func WithLogger(log Logger) NotifierOption {
	return func(n *PresignedURLNotifier) {
		n.log = log
	}
}

// WithClock sets the time source used for expiration computation.
// Default is time.Now.
func WithClock(clock Clock) NotifierOption {
	return func(n *PresignedURLNotifier) {
		n.clock = clock
	}
}

// NewPresignedURLNotifier creates a notifier bound to the given
// storage context. hoursToExpire is the number of hours until a
// generated URL expires; values below zero are clamped to zero, which
// disables URL generation entirely. The storage context is borrowed
// from the pipeline and must be non-nil and carry a signer.
func NewPresignedURLNotifier(store *StorageContext, hoursToExpire int, opts ...NotifierOption) (*PresignedURLNotifier, error) {
	if store == nil {
		return nil, ErrNilStorageContext
	}
	if store.Signer == nil {
		return nil, ErrNilSigner
	}

	n := &PresignedURLNotifier{
		store:         store,
		hoursToExpire: max(hoursToExpire, 0),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = NewSlogLogger(nil)
	}
	if n.clock == nil {
		n.clock = time.Now
	}
	return n, nil
}

// HoursToExpire returns the effective expiration window after
// clamping.
func (n *PresignedURLNotifier) HoursToExpire() int {
	return n.hoursToExpire
}

// TransferCompleted requests a presigned URL for the transferred
// resource and emits exactly one notification about the result. With
// a zero expiration window no signing request is issued and a
// diagnostic line explains why no URL exists. Signing errors are
// returned unchanged; the pipeline decides whether they fail the
// transfer.
func (n *PresignedURLNotifier) TransferCompleted(ctx context.Context, event *TransferEvent) error {
	if event == nil {
		return ErrNilEvent
	}

	if n.hoursToExpire == 0 {
		n.Debug("No presigned URL generated for " + event.Resource.Name)
		return nil
	}

	expiration := n.expiration()
	key := n.store.KeyPrefix + event.Resource.Name

	url, err := n.store.Signer.SignURL(ctx, n.store.Bucket, key, expiration)
	if err != nil {
		return err
	}

	message := "Presigned URL (expires " + expiration.Format(time.RFC1123) + "): " + url
	if n.log.InfoEnabled() {
		n.log.Infof("%s", message)
	} else {
		n.Debug(message)
	}
	return nil
}

// Debug emits the message at diagnostic severity.
func (n *PresignedURLNotifier) Debug(message string) {
	n.log.Debugf("%s", message)
}

func (n *PresignedURLNotifier) expiration() time.Time {
	return n.clock().Add(time.Duration(n.hoursToExpire) * time.Hour)
}
