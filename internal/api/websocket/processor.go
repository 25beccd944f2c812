package websocket

import (
	"blockgen/internal/api/models"
	"blockgen/internal/api/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WorkspaceStore persists documents pushed by a session.
type WorkspaceStore interface {
	SaveWorkspace(id uuid.UUID, workspace models.WorkspaceData) error
}

// MessageProcessor runs the messages that need more than a relay
type MessageProcessor struct {
	generationService *service.GenerationService
	store             WorkspaceStore
	logger            zerolog.Logger
}

// NewMessageProcessor creates a processor. store may be nil, in which case
// edits are generated but not saved.
func NewMessageProcessor(generationService *service.GenerationService, store WorkspaceStore, logger zerolog.Logger) *MessageProcessor {
	return &MessageProcessor{
		generationService: generationService,
		store:             store,
		logger:            logger,
	}
}

// ProcessMessage returns the message to broadcast, or an error meant for
// the sender only.
func (p *MessageProcessor) ProcessMessage(msg *Message) (*Message, error) {
	switch msg.Type {
	case MessageTypeWorkspaceUpdate:
		return p.processWorkspaceUpdate(msg)
	default:
		return msg, nil
	}
}

func (p *MessageProcessor) rawData(msg *Message) ([]byte, error) {
	if raw, ok := msg.Data.(json.RawMessage); ok {
		return raw, nil
	}
	dataBytes, err := json.Marshal(msg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message data: %w", err)
	}
	return dataBytes, nil
}

func (p *MessageProcessor) processWorkspaceUpdate(msg *Message) (*Message, error) {
	data, err := p.rawData(msg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := p.generationService.Generate(ctx, data, nil)
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		id, err := uuid.Parse(msg.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("invalid project id %q: %w", msg.ProjectID, err)
		}
		if err := p.store.SaveWorkspace(id, data); err != nil {
			return nil, fmt.Errorf("failed to save workspace: %w", err)
		}
	}

	p.logger.Debug().
		Str("projectId", msg.ProjectID).
		Str("userId", msg.UserID).
		Bool("cached", result.Cached).
		Msg("Workspace generated via WebSocket")

	return &Message{
		Type:      MessageTypeCodeGenerated,
		ProjectID: msg.ProjectID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Timestamp: time.Now(),
		Data: CodeGenerated{
			Code:     result.Code,
			Checksum: result.Checksum,
			Cached:   result.Cached,
		},
	}, nil
}

// replyForError builds the private answer to a failed message.
func replyForError(msg *Message, err error) Message {
	if errors.Is(err, service.ErrGenerationFailed) || errors.Is(err, service.ErrInvalidWorkspace) {
		return Message{
			Type:      MessageTypeGenerationError,
			ProjectID: msg.ProjectID,
			UserID:    msg.UserID,
			Username:  msg.Username,
			Timestamp: time.Now(),
			Data:      GenerationError{Error: err.Error()},
		}
	}
	return NewErrorMessage(msg.ProjectID, msg.UserID, msg.Username, "Failed to process message", err)
}
