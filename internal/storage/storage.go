// Package storage hides where uploaded files live: an S3-compatible
// bucket when one is configured, the local filesystem otherwise.
package storage

import "aicoach-backend-go/internal/config"

// Store writes a blob under a key and returns a publicly retrievable URL.
type Store interface {
	Put(key string, data []byte, contentType string) (string, error)
}

func FromConfig(cfg config.Config) (Store, error) {
	if cfg.S3Bucket != "" {
		return NewS3Store(cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, cfg.S3PublicBaseURL)
	}
	return NewLocalStore(cfg.MediaStoragePath), nil
}
