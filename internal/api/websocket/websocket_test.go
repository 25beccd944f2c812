package websocket

import (
	"blockgen"
	"blockgen/internal/api/models"
	"blockgen/internal/api/service"
	"blockgen/internal/realtime"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printWorkspace = `{"blocks":{"blocks":[{"type":"text_print","id":"p","inputs":{"TEXT":{"block":{"type":"text","id":"t","fields":{"TEXT":"hi"}}}}}]}}`

type recordingStore struct {
	id   uuid.UUID
	data models.WorkspaceData
	err  error
}

func (slf *recordingStore) SaveWorkspace(id uuid.UUID, workspace models.WorkspaceData) error {
	slf.id, slf.data = id, workspace
	return slf.err
}

func newTestProcessor(store WorkspaceStore) *MessageProcessor {
	gs := service.NewGenerationServiceWith(blockgen.GeneratorConfig{}, nil, nil, zerolog.Nop())
	return NewMessageProcessor(gs, store, zerolog.Nop())
}

func newTestClient(id, userID, projectID string, hub *Hub) *Client {
	return NewClient(id, userID, "user-"+userID, projectID, hub, nil, nil, zerolog.Nop())
}

func drain(ch chan Message) []Message {
	var out []Message
	for {
		select {
		case m := <-ch:
			out = append(out, m)
		default:
			return out
		}
	}
}

// ============ Processor Tests ============

func TestProcessor_WorkspaceUpdateGenerates(t *testing.T) {
	projectID := uuid.New()
	store := &recordingStore{}
	p := newTestProcessor(store)

	msg := &Message{Type: MessageTypeWorkspaceUpdate, ProjectID: projectID.String(), UserID: "u1", Data: json.RawMessage(printWorkspace)}
	out, err := p.ProcessMessage(msg)
	require.NoError(t, err)

	assert.Equal(t, MessageTypeCodeGenerated, out.Type)
	assert.Equal(t, "u1", out.UserID)
	data, ok := out.Data.(CodeGenerated)
	require.True(t, ok)
	assert.Equal(t, "window.alert('hi');\n", data.Code)
	assert.NotEmpty(t, data.Checksum)

	assert.Equal(t, projectID, store.id)
	assert.JSONEq(t, printWorkspace, string(store.data))
}

func TestProcessor_WorkspaceUpdateWithoutStore(t *testing.T) {
	p := newTestProcessor(nil)

	out, err := p.ProcessMessage(&Message{Type: MessageTypeWorkspaceUpdate, ProjectID: "not-a-uuid", Data: json.RawMessage(printWorkspace)})
	require.NoError(t, err)
	assert.Equal(t, MessageTypeCodeGenerated, out.Type)
}

func TestProcessor_GenerationFailureIsPrivate(t *testing.T) {
	store := &recordingStore{}
	p := newTestProcessor(store)
	msg := &Message{Type: MessageTypeWorkspaceUpdate, ProjectID: uuid.NewString(), UserID: "u1",
		Data: json.RawMessage(`{"blocks":{"blocks":[{"type":"nope","id":"x"}]}}`)}

	_, err := p.ProcessMessage(msg)
	require.ErrorIs(t, err, service.ErrGenerationFailed)
	assert.Nil(t, store.data, "a rejected workspace is not saved")

	reply := replyForError(msg, err)
	assert.Equal(t, MessageTypeGenerationError, reply.Type)
	assert.Contains(t, reply.Data.(GenerationError).Error, "nope")
}

func TestProcessor_StoreFailure(t *testing.T) {
	p := newTestProcessor(&recordingStore{err: errors.New("db down")})
	msg := &Message{Type: MessageTypeWorkspaceUpdate, ProjectID: uuid.NewString(), Data: json.RawMessage(printWorkspace)}

	_, err := p.ProcessMessage(msg)
	require.Error(t, err)
	assert.Equal(t, MessageTypeError, replyForError(msg, err).Type)
}

func TestProcessor_RelaysOtherTypes(t *testing.T) {
	p := newTestProcessor(nil)
	msg := &Message{Type: MessageTypeChat, Data: "hello"}

	out, err := p.ProcessMessage(msg)
	require.NoError(t, err)
	assert.Same(t, msg, out)
}

// ============ Room & Hub Tests ============

func TestRoom_JoinSendsRosterWithoutDeadlock(t *testing.T) {
	room := NewRoom("p1", zerolog.Nop())
	a := newTestClient("c1", "u1", "p1", nil)
	b := newTestClient("c2", "u2", "p1", nil)

	done := make(chan struct{})
	go func() {
		room.AddClient(a)
		room.AddClient(b)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("AddClient blocked")
	}

	msgsB := drain(b.Send)
	require.Len(t, msgsB, 2)
	assert.Equal(t, MessageTypeUserJoin, msgsB[0].Type)
	assert.Equal(t, "u2", msgsB[0].UserID)
	roster := msgsB[1].Data.(map[string]any)["activeUsers"].([]UserInfo)
	assert.Len(t, roster, 2)

	msgsA := drain(a.Send)
	assert.Len(t, msgsA, 3, "own join, roster, then b's join")
}

func TestRoom_ActiveUsersAreUnique(t *testing.T) {
	room := NewRoom("p1", zerolog.Nop())
	room.AddClient(newTestClient("c1", "u1", "p1", nil))
	room.AddClient(newTestClient("c2", "u1", "p1", nil))

	assert.Len(t, room.GetActiveUsers(), 1)
	assert.Equal(t, 2, room.ClientCount())
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a := newTestClient("c1", "u1", "p1", hub)
	b := newTestClient("c2", "u2", "p2", hub)

	hub.registerClient(a)
	hub.registerClient(b)
	drain(a.Send)
	drain(b.Send)
	assert.Equal(t, map[string]int{"p1": 1, "p2": 1}, hub.GetRoomStats())

	hub.broadcastMessage(Message{Type: MessageTypeChat, ProjectID: "p1", Data: "hi"})
	assert.Len(t, drain(a.Send), 1)
	assert.Empty(t, drain(b.Send))

	hub.unregisterClient(a)
	_, open := <-a.Send
	assert.False(t, open)
	assert.Equal(t, map[string]int{"p2": 1}, hub.GetRoomStats())
	assert.Empty(t, hub.GetActiveUsersInRoom("p1"))
}

func TestHub_DeliverGenerated(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.DeliverGenerated("p1", realtime.GeneratedEvent{Code: "x;\n", Checksum: "c", GenerationID: 3, UserID: "u9"})
	msg := <-hub.Broadcast
	assert.Equal(t, MessageTypeCodeGenerated, msg.Type)
	assert.Equal(t, "p1", msg.ProjectID)
	assert.Equal(t, "u9", msg.UserID)
	assert.Equal(t, CodeGenerated{Code: "x;\n", Checksum: "c", GenerationID: 3}, msg.Data)

	hub.DeliverGenerated("p1", realtime.GeneratedEvent{Error: "boom", Checksum: "c"})
	msg = <-hub.Broadcast
	assert.Equal(t, MessageTypeGenerationError, msg.Type)
	assert.Equal(t, GenerationError{Error: "boom", Checksum: "c"}, msg.Data)
}

// ============ Client Tests ============

func TestClient_DecodeStampsIdentity(t *testing.T) {
	c := newTestClient("c1", "u1", "p1", nil)

	msg, err := c.decode([]byte(`{"type":"chat.message","projectId":"other","userId":"spoof","data":{"text":"hi"}}`))
	require.NoError(t, err)
	assert.Equal(t, MessageTypeChat, msg.Type)
	assert.Equal(t, "p1", msg.ProjectID)
	assert.Equal(t, "u1", msg.UserID)
	assert.JSONEq(t, `{"text":"hi"}`, string(msg.Data.(json.RawMessage)))

	_, err = c.decode([]byte(`{`))
	assert.Error(t, err)
}

func TestClient_DispatchRelaysAndRejects(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := newTestClient("c1", "u1", "p1", hub)

	c.dispatch(Message{Type: MessageTypeCursorMove, ProjectID: "p1"})
	assert.Equal(t, MessageTypeCursorMove, (<-hub.Broadcast).Type)

	c.dispatch(Message{Type: MessageTypeUserJoin, ProjectID: "p1"})
	reply := <-c.Send
	assert.Equal(t, MessageTypeError, reply.Type)
}

func TestClient_WorkerAnswersWorkspaceUpdate(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := NewClient("c1", "u1", "ada", "p1", hub, nil, newTestProcessor(nil), zerolog.Nop())

	c.dispatch(Message{Type: MessageTypeWorkspaceUpdate, ProjectID: "p1", Data: json.RawMessage(printWorkspace)})
	select {
	case msg := <-hub.Broadcast:
		assert.Equal(t, MessageTypeCodeGenerated, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast")
	}

	c.dispatch(Message{Type: MessageTypeWorkspaceUpdate, ProjectID: "p1", Data: json.RawMessage(`{"blocks":`)})
	select {
	case msg := <-c.Send:
		assert.Equal(t, MessageTypeGenerationError, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no private reply")
	}

	close(c.ProcessQueue)
	<-c.workerDone
}

func TestGenerateUserColor_Stable(t *testing.T) {
	assert.Equal(t, generateUserColor("u1"), generateUserColor("u1"))
	assert.Regexp(t, `^#[0-9A-F]{6}$`, generateUserColor("anyone"))
}
