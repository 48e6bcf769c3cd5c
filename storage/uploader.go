package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader abstracts the object store holding player avatars. The
// rest of the app only ever deals in object keys; URLs are derived on
// the way out.
type FileUploader interface {
	// Upload stores the object under key, replacing any previous content.
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// GetPublicURL maps an object key to its public address. Returns an
	// empty string when no public base URL is configured.
	GetPublicURL(key string) string
}
