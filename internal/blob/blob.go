// Package blob abstracts the remote storage the gallery variants are
// published to. The pipeline only needs "put bytes under a key, get back a
// public URL"; the concrete provider stays behind the Store interface.
package blob

import "context"

// PutResult identifies an uploaded object.
type PutResult struct {
	URL string
	Key string
}

// Store is a blob upload service.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (PutResult, error)
}
