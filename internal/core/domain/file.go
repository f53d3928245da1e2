package domain

import "time"

// File represents an uploaded source file.
// Files are immutable once created and are removed only through an
// explicit delete, which cascades to dependent documents and embeddings.
type File struct {
	// ID is the unique identifier for the file.
	ID string

	// Name is the original file name.
	Name string

	// Type is the MIME type (application/pdf, text/plain, text/markdown).
	Type string

	// Size is the file size in bytes.
	Size int64

	// StorageRef locates the stored blob (a path under the data directory).
	StorageRef string

	// CreatedAt is when the file was uploaded.
	CreatedAt time.Time
}
