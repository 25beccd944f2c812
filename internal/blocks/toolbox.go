package blocks

import (
	"encoding/xml"
	"fmt"
)

// Category is one toolbox drawer. A category with Custom set is filled by
// the editor and carries no blocks of its own.
type Category struct {
	Name   string     `json:"name" validate:"required"`
	Custom string     `json:"custom,omitempty"`
	Items  []string   `json:"items,omitempty"`
	Sub    []Category `json:"sub,omitempty"`
}

type toolboxXML struct {
	XMLName    xml.Name      `xml:"xml"`
	Categories []categoryXML `xml:"category"`
}

type categoryXML struct {
	Name   string        `xml:"name,attr"`
	Custom string        `xml:"custom,attr,omitempty"`
	Blocks []blockXML    `xml:"block"`
	Sub    []categoryXML `xml:"category"`
}

type blockXML struct {
	Type string `xml:"type,attr"`
}

func toCategoryXML(c Category) categoryXML {
	out := categoryXML{Name: c.Name, Custom: c.Custom}
	if c.Custom != "" {
		return out
	}
	for _, item := range c.Items {
		out.Blocks = append(out.Blocks, blockXML{Type: item})
	}
	for _, sub := range c.Sub {
		out.Sub = append(out.Sub, toCategoryXML(sub))
	}
	return out
}

// ToolboxXML renders categories as the XML toolbox the editor loads.
func ToolboxXML(categories []Category) (string, error) {
	tb := toolboxXML{}
	for _, c := range categories {
		tb.Categories = append(tb.Categories, toCategoryXML(c))
	}
	data, err := xml.Marshal(tb)
	if err != nil {
		return "", fmt.Errorf("failed to render toolbox: %w", err)
	}
	return string(data), nil
}

// DefaultToolbox lists a few built-in kinds and every registered custom
// block.
func DefaultToolbox(r *Registry) []Category {
	custom := Category{Name: "Custom"}
	for _, def := range r.Definitions() {
		custom.Items = append(custom.Items, def.Name)
	}
	return []Category{
		{Name: "Control", Items: []string{"controls_if", "logic_compare", "controls_repeat_ext"}},
		{Name: "Math", Items: []string{"math_number", "math_arithmetic"}},
		{Name: "Text", Items: []string{"text", "text_print"}},
		{Name: "Variables", Custom: "VARIABLE"},
		{Name: "Functions", Custom: "PROCEDURE"},
		custom,
	}
}
