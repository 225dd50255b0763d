package interfaces

import (
	"context"
	"io"
)

// Storage defines the object storage collaborator for file and image field
// values. Put returns nothing but the ref passed in is the stable reference
// callers store as the field value; resolving a ref back to a fetchable URL
// is URL's job. The renderer never touches this interface: uploads happen
// in the entity-save flow.
type Storage interface {
	// Put stores an object under ref, replacing any existing object
	Put(ctx context.Context, ref string, r io.Reader, contentType string) error

	// Open returns a reader for the stored object
	Open(ctx context.Context, ref string) (io.ReadCloser, error)

	// Delete removes the stored object. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, ref string) error

	// URL resolves a stored ref to a fetchable URL with a bounded lifetime
	URL(ctx context.Context, ref string) (string, error)

	Close() error
}
