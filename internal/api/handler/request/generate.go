package request

import "encoding/json"

type Generate struct {
	Workspace     json.RawMessage `json:"workspace" validate:"required"`
	OneBasedIndex *bool           `json:"oneBasedIndex,omitempty"`
}
