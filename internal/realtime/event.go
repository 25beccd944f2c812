package realtime

import (
	"fmt"
	"strings"
	"time"
)

// GeneratedEvent is published after a stored project has been generated.
type GeneratedEvent struct {
	ProjectID    string    `json:"projectId"`
	GenerationID uint      `json:"generationId"`
	UserID       string    `json:"userId,omitempty"`
	Checksum     string    `json:"checksum"`
	Code         string    `json:"code,omitempty"`
	Error        string    `json:"error,omitempty"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GeneratedSubject is "<prefix>.project.<id>.generated". Use "*" as id to
// match every project.
func GeneratedSubject(prefix, projectID string) string {
	return fmt.Sprintf("%s.project.%s.generated", prefix, projectID)
}

// parseProjectIDFromSubject extracts the id from a GeneratedSubject.
func parseProjectIDFromSubject(prefix, subject string) (string, error) {
	rest, ok := strings.CutPrefix(subject, prefix+".project.")
	if !ok {
		return "", fmt.Errorf("subject %q outside prefix %q", subject, prefix)
	}
	id, ok := strings.CutSuffix(rest, ".generated")
	if !ok || id == "" || strings.Contains(id, ".") {
		return "", fmt.Errorf("malformed subject %q", subject)
	}
	return id, nil
}
