package endpoints

import (
	"blockgen"
	"blockgen/internal/api/handler/middleware"
	"blockgen/internal/api/handler/response"
	"blockgen/internal/api/service"
	"blockgen/internal/api/websocket"
	"blockgen/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type websocketHandler struct {
	hub            *websocket.Hub
	processor      *websocket.MessageProcessor
	projectService *service.ProjectService
	logger         zerolog.Logger
	config         blockgen.AppConfig
}

func newWebSocketHandler(hub *websocket.Hub, processor *websocket.MessageProcessor, projectService *service.ProjectService, config blockgen.AppConfig, logger zerolog.Logger) *websocketHandler {
	return &websocketHandler{
		hub:            hub,
		processor:      processor,
		projectService: projectService,
		logger:         logger,
		config:         config,
	}
}

func WebSocketHandler(router *graceful.Graceful, hub *websocket.Hub, processor *websocket.MessageProcessor, projectService *service.ProjectService) {
	registerWebSocketRoutes(router.Engine, newWebSocketHandler(hub, processor, projectService, blockgen.GetConfig(), blockgen.Logger))
}

func registerWebSocketRoutes(router gin.IRouter, h *websocketHandler) {
	wsRoutes := router.Group("/api/v1/ws")
	wsRoutes.Use(middleware.AuthMiddleware(h.config))
	{
		wsRoutes.GET("/projects/:id", h.handleWebSocket)
		wsRoutes.GET("/projects/:id/users", h.getActiveUsers)
		wsRoutes.GET("/stats", h.getRoomStats)
	}
}

// handleWebSocket joins the caller to the live session of a project
func (slf *websocketHandler) handleWebSocket(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	userID := pkg.GetUserID(c)
	if _, err := slf.projectService.FindByID(id, userID); err != nil {
		c.JSON(http.StatusNotFound, response.APIError{Message: "Project not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to upgrade to WebSocket")
		return
	}

	clientID := uuid.New().String()
	client := websocket.NewClient(
		clientID,
		userID,
		pkg.GetUsername(c),
		id.String(),
		slf.hub,
		conn,
		slf.processor,
		slf.logger,
	)

	slf.hub.Register <- client

	slf.logger.Info().
		Str("clientId", clientID).
		Str("userId", userID).
		Str("projectId", id.String()).
		Msg("WebSocket connection established")

	go client.WritePump()
	go client.ReadPump()
}

func (slf *websocketHandler) getActiveUsers(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projectId": id,
		"users":     slf.hub.GetActiveUsersInRoom(id.String()),
	})
}

func (slf *websocketHandler) getRoomStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rooms": slf.hub.GetRoomStats(),
	})
}
