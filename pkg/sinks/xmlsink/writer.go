// Package xmlsink serialises assigned rooms as a markup tree: a <rooms>
// root with one <room> element per room, carrying the room's position as
// an id attribute. The attribute is the positional index students
// reference, distinct from the <id> child element holding the record's
// own id.
package xmlsink

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/goliatone/go-roomassign/pkg/roster"
	"github.com/goliatone/go-roomassign/pkg/sink"
)

// Writer emits the markup-tree encoding.
type Writer struct{}

// Ensure the implementation satisfies the sink contract.
var _ sink.Writer = (*Writer)(nil)

// New constructs the XML writer.
func New() *Writer {
	return &Writer{}
}

func (w *Writer) Name() string {
	return "xml"
}

func (w *Writer) Extension() string {
	return ".xml"
}

func (w *Writer) ContentType() string {
	return "application/xml"
}

type roomsElement struct {
	XMLName xml.Name      `xml:"rooms"`
	Rooms   []roomElement `xml:"room"`
}

type roomElement struct {
	Index    int              `xml:"id,attr"`
	ID       int              `xml:"id"`
	Name     string           `xml:"name"`
	Students *studentsElement `xml:"students"`
}

type studentsElement struct {
	Names []string `xml:"student"`
}

// Write emits the document with an explicit encoding declaration in the
// prolog and no indentation. Rooms without assignments omit the
// <students> container, mirroring the structured-record encoding.
func (w *Writer) Write(ctx context.Context, out io.Writer, rooms []roster.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := roomsElement{Rooms: make([]roomElement, 0, len(rooms))}
	for index, room := range rooms {
		elem := roomElement{
			Index: index,
			ID:    room.ID,
			Name:  room.Name,
		}
		if len(room.Students) > 0 {
			elem.Students = &studentsElement{Names: room.Students}
		}
		doc.Rooms = append(doc.Rooms, elem)
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return fmt.Errorf("xmlsink: write prolog: %w", err)
	}
	if err := xml.NewEncoder(out).Encode(doc); err != nil {
		return fmt.Errorf("xmlsink: encode rooms: %w", err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("xmlsink: write trailing newline: %w", err)
	}
	return nil
}
