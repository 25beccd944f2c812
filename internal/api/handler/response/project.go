package response

import (
	"blockgen/internal/api/models"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	OwnerID     string               `json:"ownerId"`
	Workspace   models.WorkspaceData `json:"workspace,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type Generation struct {
	ID         uint      `json:"id"`
	Checksum   string    `json:"checksum"`
	Code       string    `json:"code,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}
