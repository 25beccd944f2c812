// Package names hands out identifiers for generated code. Every name is
// unique within a pass and never collides with a reserved word.
package names

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category separates the key spaces of the registry. The same key under two
// categories maps to two different names.
type Category string

const (
	Variable          Category = "VARIABLE"
	Procedure         Category = "PROCEDURE"
	DeveloperVariable Category = "DEVELOPER_VARIABLE"
)

// MaxSuffix bounds the numeric suffix tried by GetDistinctName.
const MaxSuffix = 1 << 16

// ErrNameExhausted is recorded when no free suffix exists for a seed.
var ErrNameExhausted = errors.New("no distinct name available")

// VariableMap resolves variable ids to user-visible names.
type VariableMap interface {
	VariableName(id string) (string, bool)
}

// Names is the per-pass name registry. It is not safe for concurrent use.
type Names struct {
	reserved  map[string]struct{}
	db        map[string]string
	used      map[string]struct{}
	variables VariableMap
	err       error
}

// New creates a registry that refuses the given reserved words.
func New(reserved ...string) *Names {
	n := &Names{reserved: make(map[string]struct{}, len(reserved))}
	n.Reserve(reserved...)
	n.Reset()
	return n
}

// Reserve adds words that must never be handed out.
func (n *Names) Reserve(words ...string) {
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			n.reserved[w] = struct{}{}
		}
	}
}

// IsReserved reports whether word is reserved.
func (n *Names) IsReserved(word string) bool {
	_, ok := n.reserved[word]
	return ok
}

// Reset forgets every name handed out and the variable map. Reserved words
// are kept.
func (n *Names) Reset() {
	n.db = make(map[string]string)
	n.used = make(map[string]struct{})
	n.variables = nil
	n.err = nil
}

// SetVariableMap sets the lookup used to resolve variable ids.
func (n *Names) SetVariableMap(vm VariableMap) {
	n.variables = vm
}

// Err returns the first failure recorded since the last Reset.
func (n *Names) Err() error {
	return n.err
}

// GetName returns the name for key in category, creating it on first use.
// Keys are case-sensitive: x and X are two variables.
// For variables a key that is a known variable id resolves to the
// variable's name first, so id and name lookups share one entry.
func (n *Names) GetName(key string, category Category) string {
	if category == Variable && n.variables != nil {
		if name, ok := n.variables.VariableName(key); ok {
			key = name
		}
	}
	dbKey := key + "_" + string(category)
	if name, ok := n.db[dbKey]; ok {
		return name
	}
	name := n.GetDistinctName(key, category)
	if name != "" {
		n.db[dbKey] = name
	}
	return name
}

// GetDistinctName returns a fresh legal identifier derived from seed. The
// name is remembered as used but is not bound to any key.
func (n *Names) GetDistinctName(seed string, category Category) string {
	base := safeName(seed)
	name := base
	for i := 2; n.taken(name); i++ {
		if i > MaxSuffix {
			if n.err == nil {
				n.err = fmt.Errorf("%w: %q (%s)", ErrNameExhausted, base, category)
			}
			return ""
		}
		name = base + strconv.Itoa(i)
	}
	n.used[name] = struct{}{}
	return name
}

func (n *Names) taken(name string) bool {
	if _, ok := n.used[name]; ok {
		return true
	}
	return n.IsReserved(name)
}

// uriSafe holds the ASCII punctuation a URI encoder leaves alone. They turn
// into a plain underscore; every other byte outside \w becomes _XX.
const uriSafe = ";,/?:@&=+$-.!~*'()#"

func safeName(name string) string {
	if name == "" {
		return "unnamed"
	}
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == ' ' || c == '_':
			sb.WriteByte('_')
		case isWordByte(c):
			sb.WriteByte(c)
		case c < 0x80 && strings.IndexByte(uriSafe, c) >= 0:
			sb.WriteByte('_')
		default:
			fmt.Fprintf(&sb, "_%02X", c)
		}
	}
	out := sb.String()
	if out[0] >= '0' && out[0] <= '9' {
		out = "my_" + out
	}
	return out
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
