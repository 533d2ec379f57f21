package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

// Loader implements roster.Loader by delegating to file or fs.FS
// strategies.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ roster.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options roster.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a roster document from the provided source and wraps it in
// a Document.
func (l *Loader) Load(ctx context.Context, src roster.Source) (roster.Document, error) {
	if src == nil {
		return roster.Document{}, errors.New("roster loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case roster.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case roster.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("roster loader: unsupported source kind")
	}
	if err != nil {
		return roster.Document{}, err
	}

	return roster.NewDocument(src, data)
}
