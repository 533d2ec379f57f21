// Package yamlsink serialises assigned rooms as a YAML sequence, the
// same shape the loader accepts for .yaml roster inputs.
package yamlsink

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
)

// Writer emits the YAML encoding.
type Writer struct{}

// Ensure the implementation satisfies the sink contract.
var _ sink.Writer = (*Writer)(nil)

// New constructs the YAML writer.
func New() *Writer {
	return &Writer{}
}

func (w *Writer) Name() string {
	return "yaml"
}

func (w *Writer) Extension() string {
	return ".yaml"
}

func (w *Writer) ContentType() string {
	return "application/yaml"
}

func (w *Writer) Write(ctx context.Context, out io.Writer, rooms []roster.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rooms); err != nil {
		enc.Close()
		return fmt.Errorf("yamlsink: encode rooms: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yamlsink: flush encoder: %w", err)
	}
	return nil
}
