package weighting

import "sync"

// Func scores an indicator array. Implementations must be pure and defined
// for arrays of length ≥ 2.
type Func func(arr []float64) (float64, error)

// Entry pairs a catalog name with its scoring function.
type Entry struct {
	Name string
	Fn   Func
}

// Registry is an ordered, append-only catalog of weighting functions.
// Entries are never removed or overwritten, so enumeration order is the
// registration order, forever. Registration after construction is legal
// and serialized; lookups take a read lock only.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a catalog pre-populated with the built-in scorers,
// in their canonical order: max_change, then max_rel_change.
func NewRegistry() *Registry {
	r := &Registry{index: make(map[string]int)}

	// Built-ins self-register at construction; errors are impossible here
	// (fresh map, distinct literal names).
	_ = r.Register("max_change", MaxChange)
	_ = r.Register("max_rel_change", func(arr []float64) (float64, error) {
		return MaxRelChange(arr, true)
	})

	return r
}

// Register appends fn under name. Purely a catalog operation: fn is stored
// as-is, never wrapped.
//
// Errors:
//   - ErrNilWeighting       — fn is nil.
//   - ErrDuplicateWeighting — name is already cataloged.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return ErrNilWeighting
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[name]; ok {
		return ErrDuplicateWeighting
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Fn: fn})

	return nil
}

// Lookup returns the function registered under name.
//
// Errors:
//   - ErrUnknownWeighting — name was never registered.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return nil, ErrUnknownWeighting
	}

	return r.entries[i].Fn, nil
}

// Entries returns a copy of the catalog in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Len reports the number of cataloged functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// defaultRegistry holds the process-wide catalog, built once at package
// initialization and only appended to afterwards.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry carrying the built-ins plus
// anything added through the package-level Register.
func Default() *Registry {
	return defaultRegistry
}

// Register appends fn to the default registry and returns it unchanged, so
// a scorer can be cataloged at its definition site and still be called
// directly. Registration failures (nil function, duplicate name) are
// programmer errors and panic.
func Register(name string, fn Func) Func {
	if err := defaultRegistry.Register(name, fn); err != nil {
		panic("weighting: Register(" + name + "): " + err.Error())
	}

	return fn
}
