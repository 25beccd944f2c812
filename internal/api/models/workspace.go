package models

type Variable struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Options are workspace-scoped settings every block inherits.
type Options struct {
	OneBasedIndex bool     `json:"oneBasedIndex,omitempty"`
	ReservedWords []string `json:"reservedWords,omitempty"`
}

// Workspace is the root container of a program graph.
type Workspace struct {
	Variables []Variable
	Options   Options

	topBlocks []*Block
}

func NewWorkspace() *Workspace {
	return &Workspace{}
}

// AddTopBlock attaches a block tree at the top level.
func (slf *Workspace) AddTopBlock(b *Block) *Workspace {
	b.parent = nil
	b.conn = connNone
	b.workspace = slf
	slf.topBlocks = append(slf.topBlocks, b)
	return slf
}

// TopBlocks returns the top-level blocks in declared order.
func (slf *Workspace) TopBlocks() []*Block {
	return slf.topBlocks
}

// AllBlocks returns every block, depth first in declared order.
func (slf *Workspace) AllBlocks() []*Block {
	var out []*Block
	for _, top := range slf.topBlocks {
		top.walk(func(b *Block) {
			out = append(out, b)
		})
	}
	return out
}

// CreateVariable registers a variable and returns it.
func (slf *Workspace) CreateVariable(name, id string) Variable {
	v := Variable{ID: id, Name: name}
	slf.Variables = append(slf.Variables, v)
	return v
}

func (slf *Workspace) VariableByID(id string) (Variable, bool) {
	for _, v := range slf.Variables {
		if v.ID == id {
			return v, true
		}
	}
	return Variable{}, false
}

func (slf *Workspace) VariableByName(name string) (Variable, bool) {
	for _, v := range slf.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// VariableName resolves a variable id to its name.
func (slf *Workspace) VariableName(id string) (string, bool) {
	v, ok := slf.VariableByID(id)
	if !ok {
		return "", false
	}
	return v.Name, true
}

// AllUsedVariables returns the variables referenced by any block, ordered by
// first use. A reference to an unknown id yields a variable named after the
// id.
func (slf *Workspace) AllUsedVariables() []Variable {
	var out []Variable
	seen := make(map[string]bool)
	add := func(v Variable) {
		key := v.ID
		if key == "" {
			key = "\x00" + v.Name
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, v)
	}

	for _, b := range slf.AllBlocks() {
		for _, f := range b.Fields {
			if !f.Variable || f.Value == "" {
				continue
			}
			if v, ok := slf.VariableByID(f.Value); ok {
				add(v)
			} else {
				add(Variable{ID: f.Value, Name: f.Value})
			}
		}
		for _, p := range b.Extra.Params {
			if v, ok := slf.VariableByID(p.ID); ok && p.ID != "" {
				add(v)
			} else if v, ok := slf.VariableByName(p.Name); ok {
				add(v)
			}
		}
	}
	return out
}

// AllDeveloperVariables returns developer variable names, ordered by first
// use and deduplicated.
func (slf *Workspace) AllDeveloperVariables() []string {
	var out []string
	seen := make(map[string]bool)
	for _, b := range slf.AllBlocks() {
		for _, name := range b.DeveloperVariables {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
