package websocket

import (
	"errors"
	"time"
)

// Message is the envelope of every frame in a live session. Data carries a
// type-specific payload.
type Message struct {
	Type      MessageType `json:"type"`
	ProjectID string      `json:"projectId,omitempty"`
	UserID    string      `json:"userId"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

type MessageType string

const (
	// Workspace edits, answered with code.generated or generation.error
	MessageTypeWorkspaceUpdate MessageType = "workspace.update"
	MessageTypeCodeGenerated   MessageType = "code.generated"
	MessageTypeGenerationError MessageType = "generation.error"

	// User interactions
	MessageTypeCursorMove MessageType = "cursor.move"
	MessageTypeChat       MessageType = "chat.message"
	MessageTypeUserJoin   MessageType = "user.join"
	MessageTypeUserLeave  MessageType = "user.leave"

	MessageTypeError MessageType = "error"
)

// CodeGenerated is the payload of code.generated.
type CodeGenerated struct {
	Code         string `json:"code"`
	Checksum     string `json:"checksum"`
	Cached       bool   `json:"cached"`
	GenerationID uint   `json:"generationId,omitempty"`
}

// GenerationError is the payload of generation.error.
type GenerationError struct {
	Error    string `json:"error"`
	Checksum string `json:"checksum,omitempty"`
}

type UserInfo struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Color    string `json:"color"`
}

type ErrorMessage struct {
	Error         string `json:"error,omitempty"`
	CustomMessage string `json:"customMessage"`
}

func systemMessage(msgType MessageType, projectID string, data any) Message {
	return Message{
		Type:      msgType,
		ProjectID: projectID,
		Username:  "system",
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewErrorMessage(projectID, userID, username, errorText string, errs ...error) Message {
	data := ErrorMessage{CustomMessage: errorText}
	if err := errors.Join(errs...); err != nil {
		data.Error = err.Error()
	}
	return Message{
		Type:      MessageTypeError,
		ProjectID: projectID,
		UserID:    userID,
		Username:  username,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewUserJoinMessage(projectID string, userInfo UserInfo) Message {
	return Message{
		Type:      MessageTypeUserJoin,
		ProjectID: projectID,
		UserID:    userInfo.UserID,
		Username:  userInfo.Username,
		Timestamp: time.Now(),
		Data:      userInfo,
	}
}

func NewUserLeaveMessage(projectID string, userInfo UserInfo) Message {
	return Message{
		Type:      MessageTypeUserLeave,
		ProjectID: projectID,
		UserID:    userInfo.UserID,
		Username:  userInfo.Username,
		Timestamp: time.Now(),
		Data:      userInfo,
	}
}
