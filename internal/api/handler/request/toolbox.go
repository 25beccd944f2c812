package request

import "blockgen/internal/blocks"

type Toolbox struct {
	Categories []blocks.Category `json:"categories" validate:"required,min=1,dive"`
}
