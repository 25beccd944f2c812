package realtime

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedSubject(t *testing.T) {
	assert.Equal(t, "blockgen.project.p1.generated", GeneratedSubject("blockgen", "p1"))
	assert.Equal(t, "blockgen.project.*.generated", GeneratedSubject("blockgen", "*"))
}

func TestParseProjectIDFromSubject(t *testing.T) {
	id, err := parseProjectIDFromSubject("blockgen", "blockgen.project.abc-123.generated")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)

	for _, subject := range []string{
		"other.project.abc.generated",
		"blockgen.project..generated",
		"blockgen.project.a.b.generated",
		"blockgen.project.abc.progress",
	} {
		_, err := parseProjectIDFromSubject("blockgen", subject)
		assert.Error(t, err, subject)
	}
}

func TestBridge_HandleDelivers(t *testing.T) {
	b := NewBridge(nil, "blockgen", zerolog.Nop())
	data, err := json.Marshal(GeneratedEvent{GenerationID: 4, Checksum: "c", Code: "x;\n"})
	require.NoError(t, err)

	var gotID string
	var got GeneratedEvent
	b.handle(&nats.Msg{Subject: "blockgen.project.p9.generated", Data: data}, func(id string, e GeneratedEvent) {
		gotID, got = id, e
	})

	assert.Equal(t, "p9", gotID)
	assert.Equal(t, "p9", got.ProjectID)
	assert.Equal(t, uint(4), got.GenerationID)
	assert.Equal(t, "x;\n", got.Code)
}

func TestBridge_HandleDropsBadMessages(t *testing.T) {
	b := NewBridge(nil, "blockgen", zerolog.Nop())
	called := false
	deliver := func(string, GeneratedEvent) { called = true }

	b.handle(&nats.Msg{Subject: "blockgen.project.p9.generated", Data: []byte("{")}, deliver)
	b.handle(&nats.Msg{Subject: "elsewhere", Data: []byte("{}")}, deliver)

	assert.False(t, called)
}

func TestBridge_CloseWithoutSubscribe(t *testing.T) {
	NewBridge(nil, "blockgen", zerolog.Nop()).Close()
}
