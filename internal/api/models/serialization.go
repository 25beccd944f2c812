package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// InputClassifier tells the decoder which sockets of a block kind take
// statements. The wire format does not say. known is false for kinds the
// classifier has never heard of.
type InputClassifier interface {
	ClassifyInput(kind, input string) (statement, known bool)
}

var statementInputName = regexp.MustCompile(`^(DO\d*|STACK)$`)

// IsStatementInputName guesses from the socket name alone. ELSE only counts
// on the if blocks: logic_ternary has a value socket of the same name.
func IsStatementInputName(kind, name string) bool {
	if name == "ELSE" {
		return kind == "controls_if" || kind == "controls_ifelse"
	}
	return statementInputName.MatchString(name)
}

var ErrEmptyBlockType = errors.New("block has no type")

type decoder struct {
	classifier InputClassifier
}

type DecodeOption func(*decoder)

// WithInputClassifier adds a classifier consulted before the socket name
// rules.
func WithInputClassifier(c InputClassifier) DecodeOption {
	return func(d *decoder) {
		d.classifier = c
	}
}

type workspaceJSON struct {
	Blocks struct {
		LanguageVersion int               `json:"languageVersion"`
		Blocks          []json.RawMessage `json:"blocks"`
	} `json:"blocks"`
	Variables []Variable `json:"variables"`
	Options   Options    `json:"options"`
}

type blockJSON struct {
	Type            string          `json:"type"`
	ID              string          `json:"id"`
	X               float64         `json:"x"`
	Y               float64         `json:"y"`
	Fields          json.RawMessage `json:"fields"`
	Inputs          json.RawMessage `json:"inputs"`
	Next            *connectionJSON `json:"next"`
	ExtraState      json.RawMessage `json:"extraState"`
	Enabled         *bool           `json:"enabled"`
	DisabledReasons []string        `json:"disabledReasons"`
	Icons           iconsJSON       `json:"icons"`
}

type iconsJSON struct {
	Comment *struct {
		Text string `json:"text"`
	} `json:"comment"`
}

type connectionJSON struct {
	Block  json.RawMessage `json:"block"`
	Shadow json.RawMessage `json:"shadow"`
}

func (c *connectionJSON) target() json.RawMessage {
	if c == nil {
		return nil
	}
	if len(c.Block) > 0 && string(c.Block) != "null" {
		return c.Block
	}
	if len(c.Shadow) > 0 && string(c.Shadow) != "null" {
		return c.Shadow
	}
	return nil
}

// DecodeWorkspace reads the editor's JSON serialisation.
func DecodeWorkspace(data []byte, opts ...DecodeOption) (*Workspace, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	var raw workspaceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode workspace: %w", err)
	}

	ws := NewWorkspace()
	ws.Variables = raw.Variables
	ws.Options = raw.Options
	for i, rb := range raw.Blocks.Blocks {
		b, err := d.block(rb)
		if err != nil {
			return nil, fmt.Errorf("top block %d: %w", i, err)
		}
		ws.AddTopBlock(b)
	}
	return ws, nil
}

func (d *decoder) block(data json.RawMessage) (*Block, error) {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode block: %w", err)
	}
	if raw.Type == "" {
		return nil, ErrEmptyBlockType
	}

	b := NewBlock(raw.Type).WithID(raw.ID)
	b.X, b.Y = raw.X, raw.Y
	b.Disabled = (raw.Enabled != nil && !*raw.Enabled) || len(raw.DisabledReasons) > 0
	if raw.Icons.Comment != nil {
		b.Comment = raw.Icons.Comment.Text
	}

	extra, err := decodeExtraState(raw.ExtraState)
	if err != nil {
		return nil, fmt.Errorf("block %s (%s): %w", raw.ID, raw.Type, err)
	}
	b.Extra = extra

	fields, err := orderedObject(raw.Fields)
	if err != nil {
		return nil, fmt.Errorf("block %s (%s) fields: %w", raw.ID, raw.Type, err)
	}
	for _, kv := range fields {
		f, err := decodeField(kv.key, kv.value)
		if err != nil {
			return nil, fmt.Errorf("block %s (%s): %w", raw.ID, raw.Type, err)
		}
		b.setField(f)
	}

	inputs, err := orderedObject(raw.Inputs)
	if err != nil {
		return nil, fmt.Errorf("block %s (%s) inputs: %w", raw.ID, raw.Type, err)
	}
	for _, kv := range inputs {
		var conn connectionJSON
		if err := json.Unmarshal(kv.value, &conn); err != nil {
			return nil, fmt.Errorf("block %s (%s) input %s: %w", raw.ID, raw.Type, kv.key, err)
		}
		var child *Block
		if target := conn.target(); target != nil {
			if child, err = d.block(target); err != nil {
				return nil, err
			}
		}
		if d.isStatement(raw.Type, kv.key) {
			b.SetStatement(kv.key, child)
		} else {
			b.SetValue(kv.key, child)
		}
	}

	if target := raw.Next.target(); target != nil {
		next, err := d.block(target)
		if err != nil {
			return nil, err
		}
		b.SetNext(next)
	}
	return b, nil
}

func (d *decoder) isStatement(kind, input string) bool {
	if d.classifier != nil {
		if statement, known := d.classifier.ClassifyInput(kind, input); known {
			return statement
		}
	}
	return IsStatementInputName(kind, input)
}

func decodeField(name string, raw json.RawMessage) (Field, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Field{Name: name}, nil
	}
	switch raw[0] {
	case '{':
		var ref struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err != nil {
			return Field{}, fmt.Errorf("field %s: %w", name, err)
		}
		return Field{Name: name, Value: ref.ID, Variable: true}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Field{}, fmt.Errorf("field %s: %w", name, err)
		}
		return Field{Name: name, Value: s}, nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return Field{}, fmt.Errorf("field %s: %w", name, err)
		}
		if v {
			return Field{Name: name, Value: "TRUE"}, nil
		}
		return Field{Name: name, Value: "FALSE"}, nil
	case 'n':
		return Field{Name: name}, nil
	default:
		// numbers keep their literal text
		return Field{Name: name, Value: string(raw)}, nil
	}
}

type keyValue struct {
	key   string
	value json.RawMessage
}

// orderedObject splits a JSON object into its members, keeping key order.
func orderedObject(data json.RawMessage) ([]keyValue, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var out []keyValue
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("member %s: %w", key, err)
		}
		out = append(out, keyValue{key: key, value: value})
	}
	return out, nil
}
