package htmlsink_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sinks/htmlsink"
)

func TestWriter_Report(t *testing.T) {
	writer, err := htmlsink.New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rooms := []roster.Room{
		{ID: 0, Name: "Room A", Students: []string{"Alice", "Carol"}},
		{ID: 1, Name: "Room B"},
	}

	var buf bytes.Buffer
	if err := writer.Write(context.Background(), &buf, rooms); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := buf.String()
	for _, fragment := range []string{
		"<title>Room assignments</title>",
		"Room A",
		"<li>Alice</li>",
		"<li>Carol</li>",
		"Room B",
		"No students assigned.",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected fragment %q in report, got:\n%s", fragment, out)
		}
	}
}

func TestWriter_CustomTitle(t *testing.T) {
	writer, err := htmlsink.New(htmlsink.WithTitle("Autumn intake"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := writer.Write(context.Background(), &buf, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "<title>Autumn intake</title>") {
		t.Fatalf("expected custom title, got:\n%s", buf.String())
	}
}

func TestWriter_CustomTemplateBundle(t *testing.T) {
	bundle := fstest.MapFS{
		"report.tmpl": &fstest.MapFile{
			Data: []byte("rooms: {% for room in rooms %}{{ room.Name }};{% endfor %}"),
		},
	}

	writer, err := htmlsink.New(htmlsink.WithTemplatesFS(bundle))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var buf bytes.Buffer
	rooms := []roster.Room{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}}
	if err := writer.Write(context.Background(), &buf, rooms); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if got := buf.String(); got != "rooms: A;B;" {
		t.Fatalf("unexpected custom template output: %q", got)
	}
}

func TestWriter_MissingTemplate(t *testing.T) {
	if _, err := htmlsink.New(htmlsink.WithTemplatesFS(fstest.MapFS{})); err == nil {
		t.Fatal("expected construction to fail without report.tmpl")
	}
}
