// Package config loads transfer-notify configuration from the
// environment and builds the storage backend, notifier, and wagon
// from it.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/transfer-notify/pkg/transfernotify"
	memorystorage "github.com/tendant/transfer-notify/pkg/transfernotify/storage/memory"
	s3storage "github.com/tendant/transfer-notify/pkg/transfernotify/storage/s3"
	"github.com/tendant/transfer-notify/pkg/transfernotify/wagon"
)

// Storage is the combined capability set a backend must provide:
// signing URLs for the notifier and uploading objects for the wagon.
type Storage interface {
	transfernotify.URLSigner
	wagon.ObjectStore
}

// Config is the environment-driven configuration surface.
type Config struct {
	Bucket        string `env:"TN_BUCKET"`
	KeyPrefix     string `env:"TN_KEY_PREFIX" env-default:""`
	HoursToExpire int    `env:"TN_PRESIGN_EXPIRE_HOURS" env-default:"24"`

	StorageType string `env:"TN_STORAGE" env-default:"memory"` // "memory" or "s3"

	S3Region          string `env:"TN_S3_REGION" env-default:"us-east-1"`
	S3AccessKeyID     string `env:"TN_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"TN_S3_SECRET_ACCESS_KEY"`
	S3Endpoint        string `env:"TN_S3_ENDPOINT"`
	S3UsePathStyle    bool   `env:"TN_S3_USE_PATH_STYLE" env-default:"false"`

	Port string `env:"TN_PORT" env-default:"8080"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket is required")
	}
	if c.StorageType != "memory" && c.StorageType != "s3" {
		return fmt.Errorf("unsupported storage type: %s", c.StorageType)
	}
	return nil
}

// BuildStorage creates the storage backend selected by StorageType.
func (c *Config) BuildStorage() (Storage, error) {
	switch c.StorageType {
	case "memory":
		return memorystorage.New(), nil
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:          c.S3Region,
			AccessKeyID:     c.S3AccessKeyID,
			SecretAccessKey: c.S3SecretAccessKey,
			Endpoint:        c.S3Endpoint,
			UsePathStyle:    c.S3UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", c.StorageType)
	}
}

// StorageContext builds the read-only addressing view handed to the
// notifier.
func (c *Config) StorageContext(signer transfernotify.URLSigner) *transfernotify.StorageContext {
	return &transfernotify.StorageContext{
		Bucket:    c.Bucket,
		KeyPrefix: c.KeyPrefix,
		Signer:    signer,
	}
}

// BuildNotifier creates a presigned-URL notifier bound to the
// configured bucket, key prefix, and expiration window.
func (c *Config) BuildNotifier(signer transfernotify.URLSigner, opts ...transfernotify.NotifierOption) (*transfernotify.PresignedURLNotifier, error) {
	return transfernotify.NewPresignedURLNotifier(c.StorageContext(signer), c.HoursToExpire, opts...)
}

// BuildWagon creates the publishing wagon for the configured bucket.
func (c *Config) BuildWagon(store wagon.ObjectStore) (*wagon.Wagon, error) {
	return wagon.New(store, c.Bucket, c.KeyPrefix)
}
