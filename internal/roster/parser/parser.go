// Package parser decodes loaded roster documents into room and student
// records. JSON is the canonical encoding; documents whose location ends
// in .yaml or .yml are decoded as YAML instead.
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

// Parser implements roster.Parser for JSON and YAML list documents.
type Parser struct{}

// Ensure the implementation satisfies the public interface.
var _ roster.Parser = (*Parser)(nil)

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Rooms decodes the document into a room sequence, preserving input order.
func (p *Parser) Rooms(ctx context.Context, doc roster.Document) ([]roster.Room, error) {
	var rooms []roster.Room
	if err := decode(ctx, doc, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Students decodes the document into a student sequence, preserving input
// order.
func (p *Parser) Students(ctx context.Context, doc roster.Document) ([]roster.Student, error) {
	var students []roster.Student
	if err := decode(ctx, doc, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func decode(ctx context.Context, doc roster.Document, out any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return fmt.Errorf("%w: %s: document is empty", roster.ErrMalformedInput, doc.Location())
	}

	var err error
	if isYAML(doc.Location()) {
		err = yaml.Unmarshal(raw, out)
	} else {
		err = json.Unmarshal(raw, out)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", roster.ErrMalformedInput, doc.Location(), err)
	}
	return nil
}

func isYAML(location string) bool {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
