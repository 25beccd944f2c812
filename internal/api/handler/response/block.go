package response

import "blockgen/internal/blocks"

type BlockDefinition struct {
	Name  string       `json:"name"`
	Shape blocks.Shape `json:"shape"`
}

type Toolbox struct {
	Categories []blocks.Category `json:"categories"`
	XML        string            `json:"xml"`
}
