package models

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
)

// ExtraState carries mutator state: how many sockets a block grew and the
// procedure signature it refers to.
type ExtraState struct {
	ItemCount      int     `json:"itemCount,omitempty"`
	ElseIfCount    int     `json:"elseIfCount,omitempty"`
	HasElse        bool    `json:"hasElse,omitempty"`
	Name           string  `json:"name,omitempty"`
	Params         []Param `json:"params,omitempty"`
	HasReturnValue bool    `json:"hasReturnValue,omitempty"`
}

// Param is a procedure parameter. Call blocks only carry names.
type Param struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// UnmarshalJSON accepts either a bare name or a {"name","id"} object.
func (p *Param) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.Name)
	}
	type plain Param
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Param(v)
	return nil
}

// ParamNames returns the parameter names in order.
func (e ExtraState) ParamNames() []string {
	out := make([]string, len(e.Params))
	for i, p := range e.Params {
		out[i] = p.Name
	}
	return out
}

// mutation is the legacy XML form of extra state.
type mutation struct {
	Items  string `xml:"items,attr"`
	ElseIf string `xml:"elseif,attr"`
	Else   string `xml:"else,attr"`
	Name   string `xml:"name,attr"`
	Value  string `xml:"value,attr"`
	Args   []struct {
		Name  string `xml:"name,attr"`
		VarID string `xml:"varid,attr"`
	} `xml:"arg"`
}

func decodeExtraState(raw json.RawMessage) (ExtraState, error) {
	var extra ExtraState
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return extra, nil
	}
	if raw[0] != '"' {
		if err := json.Unmarshal(raw, &extra); err != nil {
			return extra, fmt.Errorf("failed to decode extra state: %w", err)
		}
		return extra, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return extra, err
	}
	var m mutation
	if err := xml.Unmarshal([]byte(text), &m); err != nil {
		return extra, fmt.Errorf("failed to decode mutation %q: %w", text, err)
	}
	extra.ItemCount = atoiOrZero(m.Items)
	extra.ElseIfCount = atoiOrZero(m.ElseIf)
	extra.HasElse = atoiOrZero(m.Else) > 0
	extra.Name = m.Name
	extra.HasReturnValue = m.Value == "1" || m.Value == "true"
	for _, a := range m.Args {
		extra.Params = append(extra.Params, Param{Name: a.Name, ID: a.VarID})
	}
	return extra, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
