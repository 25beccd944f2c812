package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// DeliverFunc receives every generated event seen on the bus.
type DeliverFunc func(projectID string, event GeneratedEvent)

// Bridge subscribes to generated events and hands them to the local hub.
type Bridge struct {
	conn   *nats.Conn
	prefix string
	logger zerolog.Logger
	sub    *nats.Subscription
}

func NewBridge(conn *nats.Conn, prefix string, logger zerolog.Logger) *Bridge {
	return &Bridge{conn: conn, prefix: prefix, logger: logger}
}

// Subscribe listens on <prefix>.project.*.generated
func (b *Bridge) Subscribe(deliver DeliverFunc) error {
	subject := GeneratedSubject(b.prefix, "*")
	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		b.handle(msg, deliver)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %q: %w", subject, err)
	}
	b.sub = sub

	b.logger.Info().Str("subject", subject).Msg("NATS bridge subscribed")
	return nil
}

func (b *Bridge) handle(msg *nats.Msg, deliver DeliverFunc) {
	projectID, err := parseProjectIDFromSubject(b.prefix, msg.Subject)
	if err != nil {
		b.logger.Warn().Err(err).Msg("nats: bad subject")
		return
	}

	var event GeneratedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		b.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("nats: bad payload")
		return
	}
	event.ProjectID = projectID
	deliver(projectID, event)
}

// Close drops the subscription. The connection belongs to the caller.
func (b *Bridge) Close() {
	if b.sub == nil {
		return
	}
	if err := b.sub.Unsubscribe(); err != nil {
		b.logger.Warn().Err(err).Msg("nats unsubscribe")
	}
}
