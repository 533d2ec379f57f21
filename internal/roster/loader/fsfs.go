package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

func loadFromFS(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, errors.New("roster loader: fs.FS is not configured")
	}
	if name == "" {
		return nil, errors.New("roster loader: fs entry name is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", roster.ErrInputNotFound, name, err)
		}
		return nil, err
	}
	return data, nil
}
