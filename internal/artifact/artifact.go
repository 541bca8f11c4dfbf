// Package artifact uploads images to an S3-compatible object store and
// returns their public URL.
//
// The store is an optional collaborator: when it is not configured the
// Disabled implementation is selected and every image-accepting
// operation degrades to "no image". Callers log upload failures and
// proceed; an upload error is never surfaced to the end user.
package artifact

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the Disabled uploader.
var ErrDisabled = errors.New("artifact store is not configured")

// Uploader stores a binary blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// Disabled is the no-op Uploader used when the store is unconfigured.
type Disabled struct{}

// Upload always fails with ErrDisabled without touching the network.
func (Disabled) Upload(_ context.Context, _ []byte, _ string) (string, error) {
	return "", ErrDisabled
}
