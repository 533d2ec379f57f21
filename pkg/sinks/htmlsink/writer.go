// Package htmlsink renders assigned rooms into a static HTML report from
// a pongo2 template bundle.
package htmlsink

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
)

const reportTemplate = "report.tmpl"

// Option configures the writer before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
	title      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The
// bundle must contain report.tmpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTitle overrides the report heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(title)
		if trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// Writer emits the HTML report encoding.
type Writer struct {
	template *pongo2.Template
	title    string
}

// Ensure the implementation satisfies the sink contract.
var _ sink.Writer = (*Writer)(nil)

// New constructs the HTML writer, parsing the report template eagerly so
// bundle mistakes surface at wiring time rather than mid-run.
func New(options ...Option) (*Writer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		title:      "Room assignments",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("roomassign", pongo2.NewFSLoader(cfg.templateFS))
	tmpl, err := set.FromFile(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("htmlsink: parse %s: %w", reportTemplate, err)
	}

	return &Writer{template: tmpl, title: cfg.title}, nil
}

// MustNew panics on construction failure. Useful for init-time wiring
// with the embedded bundle.
func MustNew(options ...Option) *Writer {
	writer, err := New(options...)
	if err != nil {
		panic(err)
	}
	return writer
}

func (w *Writer) Name() string {
	return "html"
}

func (w *Writer) Extension() string {
	return ".html"
}

func (w *Writer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (w *Writer) Write(ctx context.Context, out io.Writer, rooms []roster.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	viewContext := pongo2.Context{
		"title": w.title,
		"rooms": rooms,
	}
	if err := w.template.ExecuteWriter(viewContext, out); err != nil {
		return fmt.Errorf("htmlsink: execute %s: %w", reportTemplate, err)
	}
	return nil
}
