package roster_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

func TestNewDocument(t *testing.T) {
	src := roster.SourceFromFile("rooms.json")

	doc, err := roster.NewDocument(src, []byte(`[]`))
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}
	if doc.Location() != "rooms.json" {
		t.Fatalf("unexpected location %q", doc.Location())
	}

	// Raw returns a defensive copy.
	raw := doc.Raw()
	raw[0] = 'x'
	if got := string(doc.Raw()); got != "[]" {
		t.Fatalf("document payload mutated through Raw copy: %q", got)
	}
}

func TestNewDocument_Invalid(t *testing.T) {
	if _, err := roster.NewDocument(nil, []byte(`[]`)); err == nil {
		t.Fatal("expected error for nil source")
	}

	_, err := roster.NewDocument(roster.SourceFromFile("rooms.json"), nil)
	if !errors.Is(err, roster.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for empty payload, got %v", err)
	}
}

func TestSourceKinds(t *testing.T) {
	file := roster.SourceFromFile("./fixtures/rooms.json")
	if file.Kind() != roster.SourceKindFile {
		t.Fatalf("unexpected kind %q", file.Kind())
	}
	if file.Location() != "fixtures/rooms.json" {
		t.Fatalf("expected cleaned path, got %q", file.Location())
	}

	fsSrc := roster.SourceFromFS("fixtures/rooms.json")
	if fsSrc.Kind() != roster.SourceKindFS {
		t.Fatalf("unexpected kind %q", fsSrc.Kind())
	}
}
