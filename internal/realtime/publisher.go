package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

type Publisher struct {
	conn   *nats.Conn
	prefix string
	logger zerolog.Logger
}

func NewPublisher(conn *nats.Conn, prefix string, logger zerolog.Logger) *Publisher {
	return &Publisher{conn: conn, prefix: prefix, logger: logger}
}

// PublishGenerated announces a generation to every API instance.
func (p *Publisher) PublishGenerated(event GeneratedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal generated event: %w", err)
	}
	subject := GeneratedSubject(p.prefix, event.ProjectID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats publish %q: %w", subject, err)
	}
	p.logger.Debug().Str("subject", subject).Uint("generationId", event.GenerationID).Msg("generation published")
	return nil
}
