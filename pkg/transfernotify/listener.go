package transfernotify

import (
	"context"
	"time"
)

// TransferListener receives transfer lifecycle callbacks from the
// pipeline. It is intentionally minimal: implementations get exactly
// the two operations the pipeline dispatches, instead of a broad base
// type full of no-op hooks.
type TransferListener interface {
	// TransferCompleted is called exactly once per finished transfer.
	// Returned errors propagate to the pipeline unchanged.
	TransferCompleted(ctx context.Context, event *TransferEvent) error

	// Debug receives free-text diagnostics from the pipeline.
	Debug(message string)
}

// URLSigner produces a time-bounded access URL for an existing object.
// Implementations are treated as opaque; errors they return are
// surfaced to callers without wrapping.
type URLSigner interface {
	SignURL(ctx context.Context, bucket, key string, expiresAt time.Time) (string, error)
}

// StorageContext is a read-only view of the pipeline's object-store
// state needed to address an object. It is owned by the pipeline;
// listeners hold a borrowed reference and must not mutate it.
type StorageContext struct {
	Bucket    string
	KeyPrefix string
	Signer    URLSigner
}
