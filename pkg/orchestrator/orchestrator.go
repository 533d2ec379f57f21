package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	internalloader "github.com/goliatone/go-roomassign/internal/roster/loader"
	internalparser "github.com/goliatone/go-roomassign/internal/roster/parser"
	"github.com/goliatone/go-roomassign/pkg/assign"
	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
	"github.com/goliatone/go-roomassign/pkg/sinks/htmlsink"
	"github.com/goliatone/go-roomassign/pkg/sinks/jsonsink"
	"github.com/goliatone/go-roomassign/pkg/sinks/xmlsink"
	"github.com/goliatone/go-roomassign/pkg/sinks/yamlsink"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom roster loader.
func WithLoader(loader roster.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom roster parser.
func WithParser(parser roster.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithAssigner injects a custom assignment engine.
func WithAssigner(assigner assign.Assigner) Option {
	return func(o *Orchestrator) {
		o.assigner = assigner
	}
}

// WithRegistry injects a writer registry, replacing the built-in writers.
func WithRegistry(registry *sink.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithLoaderOptions configures the built-in loader, e.g. to read roster
// sources from an fs.FS. Ignored when WithLoader is supplied.
func WithLoaderOptions(options roster.LoaderOptions) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = options
	}
}

// Orchestrator coordinates the full pipeline from roster documents to
// serialised output. It applies sensible defaults (built-in loader,
// parser, engine, and the json/xml/yaml/html writers) while remaining
// open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          roster.Loader
	parser          roster.Parser
	assigner        assign.Assigner
	registry        *sink.Registry
	loaderOptions   roster.LoaderOptions
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so
// callers can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	defer func() { o.defaultsApplied = true }()

	if o.loader == nil {
		o.loader = internalloader.New(o.loaderOptions)
	}
	if o.parser == nil {
		o.parser = internalparser.New()
	}
	if o.assigner == nil {
		o.assigner = assign.New()
	}
	if o.registry == nil {
		registry := sink.NewRegistry()
		registry.MustRegister(jsonsink.New())
		registry.MustRegister(xmlsink.New())
		registry.MustRegister(yamlsink.New())

		html, err := htmlsink.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: configure html writer: %w", err)
			return
		}
		registry.MustRegister(html)
		o.registry = registry
	}
}

// Request describes the inputs required to assign students and export the
// result.
type Request struct {
	// Rooms identifies the rooms roster document.
	Rooms roster.Source

	// Students identifies the students roster document.
	Students roster.Source

	// Output is the destination path. In single-format mode the writer is
	// inferred from its extension unless Format is set. In multi-format
	// mode it is the base path each writer appends its extension to.
	Output string

	// Format names the writer explicitly, overriding extension inference.
	Format string

	// Formats selects multi-format mode: every named writer runs against
	// the same assigned result.
	Formats []string
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

// Run executes the pipeline and writes the serialised result to disk.
// Writer resolution happens before any input is read, so an unsupported
// format never produces partial output and never touches the inputs.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	if err := o.ready(ctx); err != nil {
		return err
	}

	targets, err := o.resolveTargets(req)
	if err != nil {
		return err
	}

	rooms, err := o.assignFromSources(ctx, req)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if err := writeFile(ctx, target.writer, target.path, rooms); err != nil {
			return err
		}
	}
	return nil
}

// Generate executes the pipeline and returns the serialised bytes for a
// single format without touching the filesystem on the output side.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}
	if len(req.Formats) > 0 {
		return nil, errors.New("orchestrator: generate supports a single format, use Run for multi-format output")
	}

	writer, err := o.resolveWriter(req)
	if err != nil {
		return nil, err
	}

	rooms, err := o.assignFromSources(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := writer.Write(ctx, &buf, rooms); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Assign loads both rosters and runs the assignment engine without
// serialising, for callers that want the in-memory result.
func (o *Orchestrator) Assign(ctx context.Context, req Request) ([]roster.Room, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}
	return o.assignFromSources(ctx, req)
}

type target struct {
	writer sink.Writer
	path   string
}

func (o *Orchestrator) resolveTargets(req Request) ([]target, error) {
	if len(req.Formats) == 0 {
		writer, err := o.resolveWriter(req)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.Output) == "" {
			return nil, errors.New("orchestrator: output path is required")
		}
		return []target{{writer: writer, path: req.Output}}, nil
	}

	base := strings.TrimSpace(req.Output)
	if base == "" {
		return nil, errors.New("orchestrator: output base path is required in multi-format mode")
	}

	targets := make([]target, 0, len(req.Formats))
	seen := make(map[string]struct{}, len(req.Formats))
	for _, format := range req.Formats {
		writer, err := o.registry.Get(format)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[writer.Name()]; dup {
			continue
		}
		seen[writer.Name()] = struct{}{}
		targets = append(targets, target{writer: writer, path: base + writer.Extension()})
	}
	if len(targets) == 0 {
		return nil, errors.New("orchestrator: at least one format is required")
	}
	return targets, nil
}

func (o *Orchestrator) resolveWriter(req Request) (sink.Writer, error) {
	if format := strings.TrimSpace(req.Format); format != "" {
		return o.registry.Get(format)
	}
	if strings.TrimSpace(req.Output) == "" {
		return nil, errors.New("orchestrator: format or output path is required")
	}
	return o.registry.ForExtension(filepath.Ext(req.Output))
}

func (o *Orchestrator) assignFromSources(ctx context.Context, req Request) ([]roster.Room, error) {
	if req.Rooms == nil {
		return nil, errors.New("orchestrator: rooms source is required")
	}
	if req.Students == nil {
		return nil, errors.New("orchestrator: students source is required")
	}

	roomsDoc, err := o.loader.Load(ctx, req.Rooms)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load rooms: %w", err)
	}
	rooms, err := o.parser.Rooms(ctx, roomsDoc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse rooms: %w", err)
	}

	studentsDoc, err := o.loader.Load(ctx, req.Students)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load students: %w", err)
	}
	students, err := o.parser.Students(ctx, studentsDoc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse students: %w", err)
	}

	assigned, err := o.assigner.Assign(rooms, students)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: assign students: %w", err)
	}
	return assigned, nil
}

func writeFile(ctx context.Context, writer sink.Writer, path string, rooms []roster.Room) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("orchestrator: create %s: %w", path, err)
	}
	if err := writer.Write(ctx, file, rooms); err != nil {
		file.Close()
		return fmt.Errorf("orchestrator: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("orchestrator: close %s: %w", path, err)
	}
	return nil
}
