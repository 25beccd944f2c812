package websocket

import (
	"blockgen/internal/realtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Hub maintains the rooms of active clients and routes broadcasts to them
type Hub struct {
	// Rooms indexed by project ID
	Rooms map[string]*Room

	Register   chan *Client
	Unregister chan *Client

	// Broadcast messages to clients in a specific room
	Broadcast chan Message

	mu sync.RWMutex

	Logger zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		Rooms:      make(map[string]*Room),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Message, 256),
		Logger:     logger,
	}
}

// Run starts the hub's main event loop
func (h *Hub) Run() {
	cleanupTicker := time.NewTicker(5 * time.Minute)
	defer cleanupTicker.Stop()

	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case message := <-h.Broadcast:
			h.broadcastMessage(message)

		case <-cleanupTicker.C:
			h.cleanupEmptyRooms()
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, exists := h.Rooms[client.ProjectID]
	if !exists {
		room = NewRoom(client.ProjectID, h.Logger)
		h.Rooms[client.ProjectID] = room
		h.Logger.Info().Str("projectId", client.ProjectID).Msg("Created new room")
	}

	room.AddClient(client)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, exists := h.Rooms[client.ProjectID]
	if !exists {
		return
	}

	room.RemoveClient(client)
	close(client.Send)

	if room.IsEmpty() {
		delete(h.Rooms, client.ProjectID)
		h.Logger.Info().Str("projectId", client.ProjectID).Msg("Removed empty room")
	}
}

// broadcastMessage hands a processed message to its room
func (h *Hub) broadcastMessage(message Message) {
	h.mu.RLock()
	room, exists := h.Rooms[message.ProjectID]
	h.mu.RUnlock()

	if !exists {
		h.Logger.Debug().
			Str("projectId", message.ProjectID).
			Str("type", string(message.Type)).
			Msg("Room not found for broadcast")
		return
	}

	room.Broadcast(message)

	h.Logger.Debug().
		Str("type", string(message.Type)).
		Str("projectId", message.ProjectID).
		Str("userId", message.UserID).
		Msg("Broadcasted message")
}

// DeliverGenerated forwards a generation seen on the event bus to the
// project's room. It never blocks the caller.
func (h *Hub) DeliverGenerated(projectID string, event realtime.GeneratedEvent) {
	msg := systemMessage(MessageTypeCodeGenerated, projectID, CodeGenerated{
		Code:         event.Code,
		Checksum:     event.Checksum,
		GenerationID: event.GenerationID,
	})
	if event.Error != "" {
		msg = systemMessage(MessageTypeGenerationError, projectID, GenerationError{
			Error:    event.Error,
			Checksum: event.Checksum,
		})
	}
	msg.UserID = event.UserID

	select {
	case h.Broadcast <- msg:
	default:
		h.Logger.Warn().Str("projectId", projectID).Msg("Hub broadcast queue full, generation dropped")
	}
}

func (h *Hub) cleanupEmptyRooms() {
	h.mu.Lock()
	defer h.mu.Unlock()

	emptyRooms := make([]string, 0)
	for projectID, room := range h.Rooms {
		if room.IsEmpty() {
			emptyRooms = append(emptyRooms, projectID)
		}
	}

	for _, projectID := range emptyRooms {
		delete(h.Rooms, projectID)
	}

	if len(emptyRooms) > 0 {
		h.Logger.Info().
			Int("cleanedRooms", len(emptyRooms)).
			Int("activeRooms", len(h.Rooms)).
			Msg("Room cleanup completed")
	}
}

// GetRoomStats returns the client count of every active room
func (h *Hub) GetRoomStats() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := make(map[string]int)
	for projectID, room := range h.Rooms {
		stats[projectID] = room.ClientCount()
	}
	return stats
}

func (h *Hub) GetActiveUsersInRoom(projectID string) []UserInfo {
	h.mu.RLock()
	room, exists := h.Rooms[projectID]
	h.mu.RUnlock()

	if !exists {
		return []UserInfo{}
	}

	return room.GetActiveUsers()
}
