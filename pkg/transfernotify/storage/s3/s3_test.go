package s3

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendConfiguration(t *testing.T) {
	t.Run("DefaultRegion", func(t *testing.T) {
		backend, err := New(Config{
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", backend.config.Region)
	})

	t.Run("CustomEndpoint", func(t *testing.T) {
		backend, err := New(Config{
			Region:          "eu-west-1",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
			Endpoint:        "http://localhost:9000",
			UsePathStyle:    true,
		})
		require.NoError(t, err)
		assert.NotNil(t, backend.presignClient)
	})
}

// Presigning is a local signing operation, so it can be exercised
// without a live S3 endpoint.
func TestSignURL(t *testing.T) {
	backend, err := New(Config{
		Region:          "us-east-1",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		Endpoint:        "http://localhost:9000",
		UsePathStyle:    true,
	})
	require.NoError(t, err)

	expiresAt := time.Now().Add(24 * time.Hour)
	url, err := backend.SignURL(context.Background(), "releases", "repo/artifact-1.0.jar", expiresAt)
	require.NoError(t, err)

	assert.Contains(t, url, "releases")
	assert.Contains(t, url, "repo/artifact-1.0.jar")
	assert.Contains(t, url, "X-Amz-Expires=")
	assert.Contains(t, url, "X-Amz-Signature=")
}
