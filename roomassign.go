// Package roomassign assigns a roster of students to rooms and exports
// the result through pluggable sink writers (JSON, XML, YAML, HTML).
package roomassign

import (
	"context"

	"github.com/goliatone/go-roomassign/pkg/orchestrator"
	"github.com/goliatone/go-roomassign/pkg/roster"
)

// Room re-exports the roster record via the root package for convenience.
type Room = roster.Room

// Student re-exports the roster record via the root package for
// convenience.
type Student = roster.Student

// Request describes a pipeline invocation.
type Request = orchestrator.Request

// SourceFromFile returns a roster source pointing to a file path.
func SourceFromFile(path string) roster.Source {
	return roster.SourceFromFile(path)
}

// SourceFromFS returns a roster source identifying a resource inside the
// fs.FS configured on the orchestrator's loader.
func SourceFromFS(name string) roster.Source {
	return roster.SourceFromFS(name)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Export loads both rosters, assigns students to their rooms, and writes
// the serialised result to the output path, inferring the writer from the
// path's extension. It is the simplest entry point for callers that just
// want a file.
func Export(ctx context.Context, rooms, students roster.Source, output string, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Run(ctx, orchestrator.Request{
		Rooms:    rooms,
		Students: students,
		Output:   output,
	})
}

// Encode runs the pipeline and returns the serialised bytes for the named
// format without writing any files.
func Encode(ctx context.Context, rooms, students roster.Source, format string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Rooms:    rooms,
		Students: students,
		Format:   format,
	})
}
