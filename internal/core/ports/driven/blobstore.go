package driven

import "context"

// BlobStore persists raw uploaded file bytes.
// The returned reference is stored on the File record and is the only
// handle the rest of the system uses to reach the bytes.
type BlobStore interface {
	// Save writes the blob and returns its storage reference.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Read returns the bytes for a storage reference.
	Read(ctx context.Context, ref string) ([]byte, error)

	// Delete removes the blob. Deleting an unknown reference is not an error.
	Delete(ctx context.Context, ref string) error
}
