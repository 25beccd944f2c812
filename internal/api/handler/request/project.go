package request

import "encoding/json"

type CreateProject struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Workspace   json.RawMessage `json:"workspace"`
}

type UpdateProject struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Workspace   json.RawMessage `json:"workspace,omitempty"`
}
