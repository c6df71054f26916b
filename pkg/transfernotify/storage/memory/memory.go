package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// SignRequest records a single signing call received by the backend.
type SignRequest struct {
	Bucket    string
	Key       string
	ExpiresAt time.Time
}

// Backend is an in-memory object store and URL signer for tests and
// local development. It records every signing request and returns
// deterministic memory:// URLs.
type Backend struct {
	mu           sync.RWMutex
	objects      map[string][]byte
	signRequests []SignRequest

	// SignErr, when set, is returned by every SignURL call.
	SignErr error
}

// New creates a new in-memory backend
func New() *Backend {
	return &Backend{
		objects: make(map[string][]byte),
	}
}

// SignURL returns a deterministic URL for the object and records the
// request.
func (b *Backend) SignURL(ctx context.Context, bucket, key string, expiresAt time.Time) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.SignErr != nil {
		return "", b.SignErr
	}

	b.signRequests = append(b.signRequests, SignRequest{
		Bucket:    bucket,
		Key:       key,
		ExpiresAt: expiresAt,
	})
	return fmt.Sprintf("memory://%s/%s?expires=%d", bucket, key, expiresAt.Unix()), nil
}

// Upload stores content under bucket/key
func (b *Backend) Upload(ctx context.Context, bucket, key string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[bucket+"/"+key] = data
	return nil
}

// Exists reports whether an object was uploaded at bucket/key.
func (b *Backend) Exists(ctx context.Context, bucket, key string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.objects[bucket+"/"+key]
	return exists, nil
}

// Download returns the stored content for bucket/key.
func (b *Backend) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[bucket+"/"+key]
	if !exists {
		return nil, errors.New("object not found")
	}
	return data, nil
}

// SignRequests returns a copy of the signing calls received so far.
func (b *Backend) SignRequests() []SignRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]SignRequest, len(b.signRequests))
	copy(out, b.signRequests)
	return out
}
