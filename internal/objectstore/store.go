package objectstore

import (
	"context"
	"io"
)

// Store is the binary object store for image uploads. Upload returns a URL
// the client can embed directly; nothing else about the stored object is
// tracked by this system.
type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
