// Package assign groups students into their referenced rooms. The engine
// is the single processing step between loading rosters and serialising
// the result.
package assign

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-roomassign/pkg/roster"
)

// ErrRoomOutOfRange indicates a student references a room index outside
// the loaded room sequence.
var ErrRoomOutOfRange = errors.New("assign: room reference out of range")

// Assigner groups students into rooms. Implementations take ownership of
// the room slice: it is mutated in place and handed back, and callers must
// use the returned value rather than the argument afterwards.
type Assigner interface {
	Assign(rooms []roster.Room, students []roster.Student) ([]roster.Room, error)
}

// Engine is the default Assigner.
type Engine struct{}

// Ensure the implementation satisfies the interface.
var _ Assigner = (*Engine)(nil)

// New constructs the default assignment engine.
func New() *Engine {
	return &Engine{}
}

// Assign appends each student's name to its referenced room's student
// list, in a single pass over students in input order. Students that
// share a room keep their relative input order.
//
// On an out-of-range reference the pass stops and the error is returned;
// rooms touched before the failing student keep their appended names. The
// engine is single-pass by design: running it twice with the same student
// set duplicates entries.
func (e *Engine) Assign(rooms []roster.Room, students []roster.Student) ([]roster.Room, error) {
	for _, student := range students {
		idx := student.Room
		if idx < 0 || idx >= len(rooms) {
			return nil, fmt.Errorf("%w: student %q (id %d) references room %d, have %d rooms",
				ErrRoomOutOfRange, student.Name, student.ID, idx, len(rooms))
		}
		rooms[idx].Students = append(rooms[idx].Students, student.Name)
	}
	return rooms, nil
}
