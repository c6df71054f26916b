package wagon_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/transfer-notify/pkg/transfernotify"
	memorystorage "github.com/tendant/transfer-notify/pkg/transfernotify/storage/memory"
	"github.com/tendant/transfer-notify/pkg/transfernotify/wagon"
)

type recordingListener struct {
	fail      error
	completed []*transfernotify.TransferEvent
	debugs    []string
}

func (l *recordingListener) TransferCompleted(ctx context.Context, event *transfernotify.TransferEvent) error {
	l.completed = append(l.completed, event)
	return l.fail
}

func (l *recordingListener) Debug(message string) {
	l.debugs = append(l.debugs, message)
}

func TestNewValidation(t *testing.T) {
	store := memorystorage.New()

	_, err := wagon.New(nil, "releases", "repo/")
	assert.Error(t, err)

	_, err = wagon.New(store, "", "repo/")
	assert.Error(t, err)

	w, err := wagon.New(store, "releases", "repo/")
	require.NoError(t, err)
	assert.Equal(t, "releases", w.Bucket())
	assert.Equal(t, "repo/", w.KeyPrefix())
}

func TestPutUploadsAndFiresEvent(t *testing.T) {
	store := memorystorage.New()
	listener := &recordingListener{}

	w, err := wagon.New(store, "releases", "repo/")
	require.NoError(t, err)
	w.AddListener(listener)

	err = w.Put(context.Background(), strings.NewReader("jar bytes"), "artifact-1.0.jar", 9)
	require.NoError(t, err)

	exists, err := store.Exists(context.Background(), "releases", "repo/artifact-1.0.jar")
	require.NoError(t, err)
	assert.True(t, exists)

	require.Len(t, listener.completed, 1)
	assert.Equal(t, "artifact-1.0.jar", listener.completed[0].Resource.Name)
	assert.Equal(t, int64(9), listener.completed[0].Resource.Size)

	require.Len(t, listener.debugs, 1)
	assert.Contains(t, listener.debugs[0], "repo/artifact-1.0.jar")
}

func TestPutListenerErrorPropagates(t *testing.T) {
	store := memorystorage.New()
	boom := errors.New("notification failed")
	listener := &recordingListener{fail: boom}

	w, err := wagon.New(store, "releases", "")
	require.NoError(t, err)
	w.AddListener(listener)

	err = w.Put(context.Background(), strings.NewReader("data"), "a.jar", 4)
	assert.ErrorIs(t, err, boom)

	// The upload itself completed before the listener ran.
	exists, err := store.Exists(context.Background(), "releases", "a.jar")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPutWithNotifier(t *testing.T) {
	store := memorystorage.New()

	w, err := wagon.New(store, "releases", "repo/")
	require.NoError(t, err)

	notifier, err := transfernotify.NewPresignedURLNotifier(&transfernotify.StorageContext{
		Bucket:    w.Bucket(),
		KeyPrefix: w.KeyPrefix(),
		Signer:    store,
	}, 24)
	require.NoError(t, err)
	w.AddListener(notifier)

	err = w.Put(context.Background(), strings.NewReader("jar bytes"), "artifact-1.0.jar", 9)
	require.NoError(t, err)

	reqs := store.SignRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "repo/artifact-1.0.jar", reqs[0].Key)
}
