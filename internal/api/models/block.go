package models

type InputKind int

const (
	InputValue InputKind = iota
	InputStatement
)

func (k InputKind) String() string {
	if k == InputStatement {
		return "statement"
	}
	return "value"
}

// Field is a named literal on a block. When Variable is set, Value holds a
// variable id rather than literal text.
type Field struct {
	Name     string
	Value    string
	Variable bool
}

// Input is a named socket. Block is nil when nothing is plugged in.
type Input struct {
	Name  string
	Kind  InputKind
	Block *Block
}

type connection int

const (
	connNone connection = iota
	connValue
	connStatement
	connNext
)

// Block is one node of the program graph. The generator only reads blocks.
type Block struct {
	ID       string
	Type     string
	Fields   []Field
	Inputs   []*Input
	Next     *Block
	Extra    ExtraState
	Comment  string
	Disabled bool
	X, Y     float64

	// DeveloperVariables are internal names the block needs declared.
	DeveloperVariables []string

	parent    *Block
	conn      connection
	workspace *Workspace
}

// NewBlock creates an empty block of the given kind.
func NewBlock(kind string) *Block {
	return &Block{Type: kind}
}

// Field returns the value of the named field, or "" when absent.
func (slf *Block) Field(name string) string {
	v, _ := slf.LookupField(name)
	return v
}

// LookupField returns the value of the named field and whether it exists.
func (slf *Block) LookupField(name string) (string, bool) {
	for _, f := range slf.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// InputNamed returns the socket with the given name, or nil.
func (slf *Block) InputNamed(name string) *Input {
	for _, in := range slf.Inputs {
		if in.Name == name {
			return in
		}
	}
	return nil
}

// Input returns the block plugged into the named socket, or nil.
func (slf *Block) Input(name string) *Block {
	if in := slf.InputNamed(name); in != nil {
		return in.Block
	}
	return nil
}

// Parent returns the block this one hangs from, including the previous
// block of a statement sequence.
func (slf *Block) Parent() *Block {
	return slf.parent
}

// OutputConnected reports whether the block is plugged into a value socket.
func (slf *Block) OutputConnected() bool {
	return slf.conn == connValue
}

// Workspace returns the workspace owning the block tree, or nil.
func (slf *Block) Workspace() *Workspace {
	root := slf
	for root.parent != nil {
		root = root.parent
	}
	return root.workspace
}

// OneBasedIndex reports the indexing mode inherited from the workspace.
func (slf *Block) OneBasedIndex() bool {
	ws := slf.Workspace()
	return ws != nil && ws.Options.OneBasedIndex
}

// Children returns the blocks plugged into inputs, in input order.
func (slf *Block) Children() []*Block {
	var out []*Block
	for _, in := range slf.Inputs {
		if in.Block != nil {
			out = append(out, in.Block)
		}
	}
	return out
}

// SetField sets a literal field, replacing an existing one.
func (slf *Block) SetField(name, value string) *Block {
	return slf.setField(Field{Name: name, Value: value})
}

// SetVariable sets a variable reference field holding a variable id.
func (slf *Block) SetVariable(name, id string) *Block {
	return slf.setField(Field{Name: name, Value: id, Variable: true})
}

func (slf *Block) setField(f Field) *Block {
	for i := range slf.Fields {
		if slf.Fields[i].Name == f.Name {
			slf.Fields[i] = f
			return slf
		}
	}
	slf.Fields = append(slf.Fields, f)
	return slf
}

// SetValue plugs child into a value socket. A nil child declares an empty
// socket.
func (slf *Block) SetValue(name string, child *Block) *Block {
	return slf.setInput(name, InputValue, child)
}

// SetStatement plugs child into a statement socket.
func (slf *Block) SetStatement(name string, child *Block) *Block {
	return slf.setInput(name, InputStatement, child)
}

func (slf *Block) setInput(name string, kind InputKind, child *Block) *Block {
	if child != nil {
		child.parent = slf
		child.conn = connValue
		if kind == InputStatement {
			child.conn = connStatement
		}
	}
	if in := slf.InputNamed(name); in != nil {
		in.Kind = kind
		in.Block = child
		return slf
	}
	slf.Inputs = append(slf.Inputs, &Input{Name: name, Kind: kind, Block: child})
	return slf
}

// SetNext chains next after the block.
func (slf *Block) SetNext(next *Block) *Block {
	if next != nil {
		next.parent = slf
		next.conn = connNext
	}
	slf.Next = next
	return slf
}

func (slf *Block) WithExtra(extra ExtraState) *Block {
	slf.Extra = extra
	return slf
}

func (slf *Block) WithComment(text string) *Block {
	slf.Comment = text
	return slf
}

func (slf *Block) WithID(id string) *Block {
	slf.ID = id
	return slf
}

func (slf *Block) Disable() *Block {
	slf.Disabled = true
	return slf
}

// walk visits the block, its inputs in order, then the rest of its sequence.
func (slf *Block) walk(visit func(*Block)) {
	for b := slf; b != nil; b = b.Next {
		visit(b)
		for _, child := range b.Children() {
			child.walk(visit)
		}
	}
}
