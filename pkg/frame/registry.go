package frame

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pion/yuvio/internal/logging"
)

var logger = logging.NewLogger("yuvio/frame")

// Registry maps pixel format identifiers to descriptors. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Descriptor)}
}

// DefaultRegistry holds every built-in format. It is populated during package
// initialisation, before any importer's init runs.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range builtinDescriptors() {
		if err := r.Register(d, false); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds d. Registering an identifier that is already known fails with
// ErrDuplicateFormat unless overwrite is set.
func (r *Registry) Register(d Descriptor, overwrite bool) error {
	if err := d.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.formats[d.ID]; ok {
		if !overwrite {
			return fmt.Errorf("%w: another format with identifier %q is registered already", ErrDuplicateFormat, d.ID)
		}
		logger.Debugf("overwriting format %q", d.ID)
	}
	r.formats[d.ID] = d
	return nil
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	r.mu.RLock()
	d, ok := r.formats[id]
	r.mu.RUnlock()
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
	}
	return d, nil
}

// New looks up id and binds it to width x height.
func (r *Registry) New(id string, width, height int) (*Format, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return NewFormat(d, width, height)
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.formats[id]
	return ok
}

// Len returns the number of registered formats.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.formats)
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.formats))
	for id := range r.formats {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// IOInfo describes the plane shapes of the format registered under id.
func (r *Registry) IOInfo(id string) (string, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return "", err
	}
	return ioInfo(d), nil
}

func (r *Registry) String() string {
	return strings.Join(r.IDs(), ", ")
}

// Lookup resolves id in DefaultRegistry.
func Lookup(id string) (Descriptor, error) {
	return DefaultRegistry.Lookup(id)
}

// New binds the DefaultRegistry format id to width x height.
func New(id string, width, height int) (*Format, error) {
	return DefaultRegistry.New(id, width, height)
}
