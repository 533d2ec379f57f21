package sink

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedFormat indicates a requested output encoding has no
// registered writer.
var ErrUnsupportedFormat = errors.New("sink: unsupported output format")

// Registry stores writers by name, providing discovery and duplication
// safeguards. Implementations can embed or wrap this for dependency
// injection.
type Registry struct {
	mu      sync.RWMutex
	writers map[string]Writer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]Writer),
	}
}

// Register adds a writer by its Name(). Duplicate names return an error.
func (r *Registry) Register(writer Writer) error {
	if writer == nil {
		return fmt.Errorf("sink: writer is required")
	}
	name := normalizeName(writer.Name())
	if name == "" {
		return fmt.Errorf("sink: writer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.writers[name]; exists {
		return fmt.Errorf("sink: writer %q already registered", name)
	}

	r.writers[name] = writer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(writer Writer) {
	if err := r.Register(writer); err != nil {
		panic(err)
	}
}

// Get retrieves a writer by name.
func (r *Registry) Get(name string) (Writer, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("sink: writer name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	writer, ok := r.writers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return writer, nil
}

// ForExtension retrieves the writer whose Extension() matches the given
// file extension (with or without the leading dot).
func (r *Registry) ForExtension(ext string) (Writer, error) {
	key := normalizeExtension(ext)
	if key == "" {
		return nil, fmt.Errorf("%w: destination has no extension", ErrUnsupportedFormat)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, writer := range r.writers {
		if normalizeExtension(writer.Extension()) == key {
			return writer, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// List returns a sorted list of writer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a writer is registered.
func (r *Registry) Has(name string) bool {
	key := normalizeName(name)
	if key == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.writers[key]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeExtension(ext string) string {
	clean := strings.ToLower(strings.TrimSpace(ext))
	clean = strings.TrimPrefix(clean, ".")
	// .yml rosters are YAML; accept the short form for output too.
	if clean == "yml" {
		clean = "yaml"
	}
	return clean
}
