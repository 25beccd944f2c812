package websocket

import (
	"sync"

	"github.com/rs/zerolog"
)

// Room groups the clients editing one project.
type Room struct {
	ProjectID string
	Clients   map[string]*Client
	mu        sync.RWMutex
	Logger    zerolog.Logger
}

func NewRoom(projectID string, logger zerolog.Logger) *Room {
	return &Room{
		ProjectID: projectID,
		Clients:   make(map[string]*Client),
		Logger:    logger,
	}
}

// AddClient adds a client and announces it to the room
func (r *Room) AddClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Clients[client.ID] = client
	r.Logger.Info().
		Str("projectId", r.ProjectID).
		Str("clientId", client.ID).
		Str("userId", client.UserID).
		Int("totalClients", len(r.Clients)).
		Msg("Client joined room")

	r.broadcastUserJoin(client)
}

// RemoveClient removes a client and announces it to the others
func (r *Room) RemoveClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.Clients[client.ID]; exists {
		delete(r.Clients, client.ID)
		r.Logger.Info().
			Str("projectId", r.ProjectID).
			Str("clientId", client.ID).
			Str("userId", client.UserID).
			Int("remainingClients", len(r.Clients)).
			Msg("Client left room")

		r.sendAll(NewUserLeaveMessage(r.ProjectID, client.Info()))
	}
}

// Broadcast sends a message to all clients in the room
func (r *Room) Broadcast(message Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	r.sendAll(message)
}

// GetActiveUsers returns each connected user once
func (r *Room) GetActiveUsers() []UserInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.activeUsers()
}

func (r *Room) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Clients) == 0
}

func (r *Room) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Clients)
}

// activeUsers expects r.mu to be held.
func (r *Room) activeUsers() []UserInfo {
	users := make([]UserInfo, 0, len(r.Clients))
	seen := make(map[string]bool)

	for _, client := range r.Clients {
		if !seen[client.UserID] {
			users = append(users, client.Info())
			seen[client.UserID] = true
		}
	}

	return users
}

// sendAll expects r.mu to be held. Slow clients miss the message.
func (r *Room) sendAll(message Message) {
	for _, client := range r.Clients {
		select {
		case client.Send <- message:
		default:
			r.Logger.Warn().
				Str("clientId", client.ID).
				Msg("Client send buffer full, message dropped")
		}
	}
}

// broadcastUserJoin expects r.mu to be held.
func (r *Room) broadcastUserJoin(client *Client) {
	r.sendAll(NewUserJoinMessage(r.ProjectID, client.Info()))

	// the newcomer also gets the current roster
	roster := systemMessage(MessageTypeUserJoin, r.ProjectID, map[string]any{
		"activeUsers": r.activeUsers(),
	})
	select {
	case client.Send <- roster:
	default:
	}
}
