// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// Storage is the interface for uploading and removing binary objects.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
	// KeyFromURL recovers the object key from a public URL previously
	// produced by PublicURL.
	KeyFromURL(rawURL string) (string, error)
}

// keyFromURL extracts the object key from a public URL: the portion of the
// path following the "/{marker}/" segment, or the final path segment when the
// marker is absent. The result is URL-decoded.
func keyFromURL(rawURL, marker string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	key := u.Path
	if idx := strings.Index(u.Path, "/"+marker+"/"); idx >= 0 {
		key = u.Path[idx+len(marker)+2:]
	} else if idx := strings.LastIndex(u.Path, "/"); idx >= 0 {
		key = u.Path[idx+1:]
	}

	return url.PathUnescape(key)
}
