package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceData is a Blockly JSON document stored as is.
type WorkspaceData []byte

// Scan implements sql.Scanner interface
func (w *WorkspaceData) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*w = append(WorkspaceData(nil), v...)
		return nil
	case string:
		*w = WorkspaceData(v)
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into WorkspaceData", value)
	}
}

// Value implements driver.Valuer interface
func (w WorkspaceData) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return []byte(w), nil
}

func (w WorkspaceData) MarshalJSON() ([]byte, error) {
	if w == nil {
		return []byte("null"), nil
	}
	return w, nil
}

func (w *WorkspaceData) UnmarshalJSON(data []byte) error {
	if data == nil {
		*w = nil
		return nil
	}
	*w = append(WorkspaceData(nil), data...)
	return nil
}

// Decode parses the stored document into a workspace.
func (w WorkspaceData) Decode(opts ...DecodeOption) (*Workspace, error) {
	if len(w) == 0 {
		return NewWorkspace(), nil
	}
	return DecodeWorkspace(w, opts...)
}

type Project struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `gorm:"not null;index" json:"ownerId"`
	Workspace   WorkspaceData  `gorm:"type:jsonb" json:"workspace"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Generation records one pass over a project's workspace.
type Generation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	Checksum   string    `gorm:"type:varchar(64);not null" json:"checksum"`
	Code       string    `gorm:"type:text" json:"code"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}
