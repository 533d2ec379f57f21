package roster

import (
	"context"
	"io/fs"
)

// Loader fetches a roster document from a source and materialises it in
// memory. Implementations must wrap missing locations in ErrInputNotFound.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Parser decodes a loaded document into room or student records.
// Implementations must wrap decode failures in ErrMalformedInput.
type Parser interface {
	Rooms(ctx context.Context, doc Document) ([]Room, error)
	Students(ctx context.Context, doc Document) ([]Student, error)
}

// LoaderOptions carries pre-resolved loader configuration.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Optional when only file
	// sources are used.
	FileSystem fs.FS
}
