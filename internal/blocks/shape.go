package blocks

const (
	InputKindValue     = "value"
	InputKindStatement = "statement"
)

// Shape is a built block as the editor sees it.
type Shape struct {
	Type              string        `json:"type"`
	Inputs            []*InputShape `json:"inputs"`
	Output            *OutputShape  `json:"output,omitempty"`
	PreviousStatement bool          `json:"previousStatement,omitempty"`
	NextStatement     bool          `json:"nextStatement,omitempty"`
	Colour            int           `json:"colour"`
	Tooltip           string        `json:"tooltip,omitempty"`
	HelpURL           string        `json:"helpUrl,omitempty"`
}

type InputShape struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Check  string   `json:"check,omitempty"`
	Labels []string `json:"labels,omitempty"`
}

type OutputShape struct {
	Check string `json:"check,omitempty"`
}

func (slf *Shape) appendInput(name, kind string) *InputShape {
	in := &InputShape{Name: name, Kind: kind}
	slf.Inputs = append(slf.Inputs, in)
	return in
}

// SetOutput makes the block a value block. An empty check accepts anything.
func (slf *Shape) SetOutput(check string) *Shape {
	slf.Output = &OutputShape{Check: check}
	slf.PreviousStatement = false
	slf.NextStatement = false
	return slf
}

// SetStatement makes the block chainable with the blocks around it.
func (slf *Shape) SetStatement() *Shape {
	slf.Output = nil
	slf.PreviousStatement = true
	slf.NextStatement = true
	return slf
}

func (slf *Shape) SetColour(hue int) *Shape {
	slf.Colour = hue
	return slf
}

func (slf *Shape) SetTooltip(text string) *Shape {
	slf.Tooltip = text
	return slf
}

func (slf *Shape) SetHelpURL(url string) *Shape {
	slf.HelpURL = url
	return slf
}

// AppendField adds a label in front of the socket.
func (slf *InputShape) AppendField(label string) *InputShape {
	slf.Labels = append(slf.Labels, label)
	return slf
}

func (slf *InputShape) SetCheck(check string) *InputShape {
	slf.Check = check
	return slf
}
