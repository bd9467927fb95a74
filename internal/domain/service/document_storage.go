package service

import (
	"context"
	"io"
)

// DocumentStorage abstracts the blob store holding service provider document
// attachments.
type DocumentStorage interface {
	// Upload writes the object under key and returns its publicly resolvable URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
