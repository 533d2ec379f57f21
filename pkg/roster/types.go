package roster

// Room is a named destination entity that accumulates assigned student
// names. Identity is positional: a room's index in the loaded sequence is
// what students reference, independently of the record's own ID field.
type Room struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Students []string `json:"students,omitempty" yaml:"students,omitempty"`
}

// Student references exactly one room by zero-based index into the room
// sequence. The Room field is an index, not a room ID.
type Student struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Room int    `json:"room" yaml:"room"`
}
