package blocks

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

var ErrDuplicateDefinition = errors.New("block definition already registered")

// Registry holds custom block definitions by name.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
	}
}

// Register adds def. Names must be non-empty and unique.
func (r *Registry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if def.Name == "" {
		return fmt.Errorf("%w: empty name", ErrDuplicateDefinition)
	}
	if _, ok := r.definitions[def.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDefinition, def.Name)
	}
	r.definitions[def.Name] = def
	return nil
}

// MustRegister is Register for package initialisation.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}

// Definitions returns every definition sorted by name.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// IsStatementInput reports whether input of kind takes statements. Unknown
// kinds report false.
func (r *Registry) IsStatementInput(kind, input string) bool {
	statement, _ := r.ClassifyInput(kind, input)
	return statement
}

// ClassifyInput reports whether input of kind takes statements. Registered
// definitions are asked first, then the standard kinds. known is false when
// neither has the kind.
func (r *Registry) ClassifyInput(kind, input string) (statement, known bool) {
	if def, ok := r.Lookup(kind); ok {
		return slices.Contains(def.Statements(), input), true
	}
	return builtinStatementInput(kind, input)
}

// DefaultRegistry holds the custom blocks shipped with the service.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.MustRegister(StringLengthBlock)
	DefaultRegistry.MustRegister(RepeatWhileBlock)
}
