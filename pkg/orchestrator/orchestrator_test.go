package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-roomassign/pkg/assign"
	"github.com/goliatone/go-roomassign/pkg/orchestrator"
	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
)

const (
	roomsJSON = `[
    {"id": 0, "name": "Room A"},
    {"id": 1, "name": "Room B"}
]`
	studentsJSON = `[
    {"id": 0, "name": "Alice", "room": 0},
    {"id": 1, "name": "Bob", "room": 1},
    {"id": 2, "name": "Carol", "room": 0}
]`
)

func writeFixture(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func assignedWant() []roster.Room {
	return []roster.Room{
		{ID: 0, Name: "Room A", Students: []string{"Alice", "Carol"}},
		{ID: 1, Name: "Room B", Students: []string{"Bob"}},
	}
}

func TestRun_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", roomsJSON)
	students := writeFixture(t, dir, "students.json", studentsJSON)
	output := filepath.Join(dir, "out.json")

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Output:   output,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var got []roster.Room
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output did not parse back: %v", err)
	}
	if diff := cmp.Diff(assignedWant(), got); diff != "" {
		t.Fatalf("assigned rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_UnsupportedFormatBeforeAnyRead(t *testing.T) {
	dir := t.TempDir()

	// The roster sources deliberately do not exist: writer resolution must
	// fail before the loader ever runs.
	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(filepath.Join(dir, "rooms.json")),
		Students: roster.SourceFromFile(filepath.Join(dir, "students.json")),
		Output:   filepath.Join(dir, "out.txt"),
	})
	if !errors.Is(err, sink.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if errors.Is(err, roster.ErrInputNotFound) {
		t.Fatalf("inputs were read before format resolution: %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no partial output files, found %d entries", len(entries))
	}
}

func TestRun_MultiFormat(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", roomsJSON)
	students := writeFixture(t, dir, "students.json", studentsJSON)
	base := filepath.Join(dir, "assignments")

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Output:   base,
		Formats:  []string{"json", "xml"},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, ext := range []string{".json", ".xml"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Fatalf("expected output %s: %v", base+ext, err)
		}
	}

	xmlData, err := os.ReadFile(base + ".xml")
	if err != nil {
		t.Fatalf("read xml output: %v", err)
	}
	if !strings.Contains(string(xmlData), `<room id="0"><id>0</id><name>Room A</name>`) {
		t.Fatalf("unexpected xml output:\n%s", xmlData)
	}
}

func TestRun_YAMLInput(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.yaml", "- id: 0\n  name: Room A\n- id: 1\n  name: Room B\n")
	students := writeFixture(t, dir, "students.yml",
		"- {id: 0, name: Alice, room: 0}\n- {id: 1, name: Bob, room: 1}\n- {id: 2, name: Carol, room: 0}\n")
	output := filepath.Join(dir, "out.json")

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Output:   output,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got []roster.Room
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output did not parse back: %v", err)
	}
	if diff := cmp.Diff(assignedWant(), got); diff != "" {
		t.Fatalf("assigned rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_XMLBytes(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", roomsJSON)
	students := writeFixture(t, dir, "students.json", studentsJSON)

	gen := orchestrator.New()
	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Format:   "xml",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := `<rooms><room id="0"><id>0</id><name>Room A</name>` +
		`<students><student>Alice</student><student>Carol</student></students></room>` +
		`<room id="1"><id>1</id><name>Room B</name><students><student>Bob</student></students></room></rooms>`
	if !strings.Contains(string(out), want) {
		t.Fatalf("markup output mismatch\nwant fragment: %s\ngot: %s", want, out)
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	students := writeFixture(t, dir, "students.json", studentsJSON)

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(filepath.Join(dir, "rooms.json")),
		Students: roster.SourceFromFile(students),
		Output:   filepath.Join(dir, "out.json"),
	})
	if !errors.Is(err, roster.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestRun_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", `[{"id": 0,`)
	students := writeFixture(t, dir, "students.json", studentsJSON)

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Output:   filepath.Join(dir, "out.json"),
	})
	if !errors.Is(err, roster.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestAssign_InMemoryResult(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", roomsJSON)
	students := writeFixture(t, dir, "students.json", studentsJSON)

	gen := orchestrator.New()
	got, err := gen.Assign(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
	})
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if diff := cmp.Diff(assignedWant(), got); diff != "" {
		t.Fatalf("assigned rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_OutOfRangeReference(t *testing.T) {
	dir := t.TempDir()
	rooms := writeFixture(t, dir, "rooms.json", roomsJSON)
	students := writeFixture(t, dir, "students.json", `[{"id": 0, "name": "Eve", "room": 5}]`)
	output := filepath.Join(dir, "out.json")

	gen := orchestrator.New()
	err := gen.Run(context.Background(), orchestrator.Request{
		Rooms:    roster.SourceFromFile(rooms),
		Students: roster.SourceFromFile(students),
		Output:   output,
	})
	if !errors.Is(err, assign.ErrRoomOutOfRange) {
		t.Fatalf("expected ErrRoomOutOfRange, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file after assignment failure, stat: %v", statErr)
	}
}
