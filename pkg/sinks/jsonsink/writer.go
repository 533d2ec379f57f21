// Package jsonsink serialises assigned rooms as a pretty-printed JSON
// array, one object per room in input order.
package jsonsink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
)

// Option configures the writer before construction.
type Option func(*Writer)

// WithIndent overrides the default four-space indent.
func WithIndent(indent string) Option {
	return func(w *Writer) {
		w.indent = indent
	}
}

// Writer emits the structured-record encoding.
type Writer struct {
	indent string
}

// Ensure the implementation satisfies the sink contract.
var _ sink.Writer = (*Writer)(nil)

// New constructs the JSON writer applying any provided options.
func New(options ...Option) *Writer {
	w := &Writer{indent: "    "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

func (w *Writer) Name() string {
	return "json"
}

func (w *Writer) Extension() string {
	return ".json"
}

func (w *Writer) ContentType() string {
	return "application/json"
}

// Write encodes the room sequence. Field order follows the Room record
// (id, name, students); rooms without assignments omit the students key.
func (w *Writer) Write(ctx context.Context, out io.Writer, rooms []roster.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(rooms); err != nil {
		return fmt.Errorf("jsonsink: encode rooms: %w", err)
	}
	return nil
}
