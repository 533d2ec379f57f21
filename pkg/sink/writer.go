package sink

import (
	"context"
	"io"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

// Writer serialises assigned rooms into one output encoding.
type Writer interface {
	Name() string
	Extension() string
	ContentType() string
	Write(ctx context.Context, w io.Writer, rooms []roster.Room) error
}
