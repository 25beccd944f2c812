package websocket

import (
	"encoding/json"
	"hash/fnv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512 * 1024 // 512KB

	processQueueSize = 100
)

type Client struct {
	ID           string
	UserID       string
	Username     string
	ProjectID    string
	Color        string
	Hub          *Hub
	Conn         *websocket.Conn
	Send         chan Message
	Processor    *MessageProcessor
	ProcessQueue chan Message
	Logger       zerolog.Logger

	workerDone chan struct{}
}

// incoming keeps Data raw so workspace documents reach the generator with
// their key order intact.
type incoming struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

func NewClient(id, userID, username, projectID string, hub *Hub, conn *websocket.Conn, processor *MessageProcessor, logger zerolog.Logger) *Client {
	client := &Client{
		ID:           id,
		UserID:       userID,
		Username:     username,
		ProjectID:    projectID,
		Color:        generateUserColor(userID),
		Hub:          hub,
		Conn:         conn,
		Send:         make(chan Message, 256),
		Processor:    processor,
		ProcessQueue: make(chan Message, processQueueSize),
		Logger:       logger,
		workerDone:   make(chan struct{}),
	}

	go client.processWorker()

	return client
}

func (c *Client) Info() UserInfo {
	return UserInfo{UserID: c.UserID, Username: c.Username, Color: c.Color}
}

func (c *Client) ReadPump() {
	defer func() {
		// the worker may still reply on Send, which the hub closes
		close(c.ProcessQueue)
		<-c.workerDone
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, messageBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Logger.Error().Err(err).Str("clientId", c.ID).Msg("WebSocket read error")
			}
			break
		}

		msg, err := c.decode(messageBytes)
		if err != nil {
			c.Logger.Warn().Err(err).Str("clientId", c.ID).Msg("Failed to unmarshal message")
			c.sendError("Invalid message format", err)
			continue
		}
		c.dispatch(msg)
	}
}

// decode stamps an incoming frame with the connection's identity.
func (c *Client) decode(messageBytes []byte) (Message, error) {
	var in incoming
	if err := json.Unmarshal(messageBytes, &in); err != nil {
		return Message{}, err
	}
	msg := Message{
		Type:      in.Type,
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		Username:  c.Username,
		Timestamp: time.Now(),
	}
	if len(in.Data) > 0 {
		msg.Data = in.Data
	}
	return msg, nil
}

// dispatch relays simple messages and queues the rest for the worker.
func (c *Client) dispatch(msg Message) {
	switch {
	case !c.allowed(msg.Type):
		c.sendError("Unsupported message type: " + string(msg.Type))
	case !c.requiresProcessing(msg.Type):
		c.Hub.Broadcast <- msg
	default:
		select {
		case c.ProcessQueue <- msg:
		default:
			c.Logger.Warn().
				Str("type", string(msg.Type)).
				Msg("Process queue full, dropping message")
			c.sendError("Server is busy, please try again")
		}
	}
}

// WritePump pumps messages from the hub to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			messageBytes, err := json.Marshal(message)
			if err != nil {
				c.Logger.Error().Err(err).Msg("Failed to marshal message")
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(errorMsg string, errs ...error) {
	select {
	case c.Send <- NewErrorMessage(c.ProjectID, c.UserID, c.Username, errorMsg, errs...):
	default:
	}
}

// processWorker handles queued messages one at a time, in arrival order
func (c *Client) processWorker() {
	defer close(c.workerDone)
	c.Logger.Debug().Str("clientId", c.ID).Msg("Process worker started")

	for msg := range c.ProcessQueue {
		if c.Processor == nil {
			continue
		}
		processedMsg, err := c.Processor.ProcessMessage(&msg)
		if err != nil {
			c.Logger.Info().
				Err(err).
				Str("type", string(msg.Type)).
				Str("userId", msg.UserID).
				Msg("Failed to process message")

			select {
			case c.Send <- replyForError(&msg, err):
			default:
			}
			continue
		}

		c.Hub.Broadcast <- *processedMsg
	}

	c.Logger.Debug().Str("clientId", c.ID).Msg("Process worker stopped")
}

// allowed lists the types a client may send.
func (c *Client) allowed(msgType MessageType) bool {
	switch msgType {
	case MessageTypeWorkspaceUpdate, MessageTypeCursorMove, MessageTypeChat:
		return true
	default:
		return false
	}
}

func (c *Client) requiresProcessing(msgType MessageType) bool {
	return msgType == MessageTypeWorkspaceUpdate
}

// generateUserColor picks a stable color for a user
func generateUserColor(userID string) string {
	colors := []string{
		"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
		"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
		"#F8B739", "#52B788", "#E76F51", "#2A9D8F",
	}
	h := fnv.New32a()
	h.Write([]byte(userID))
	return colors[h.Sum32()%uint32(len(colors))]
}
