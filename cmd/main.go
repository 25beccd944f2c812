package main

import (
	"blockgen"
	"blockgen/internal/api/handler/endpoints"
	"blockgen/internal/api/models"
	"blockgen/internal/api/service"
	"blockgen/internal/api/websocket"
	"blockgen/internal/realtime"
	"blockgen/pkg"
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	blockgen.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)
	cfg := blockgen.GetConfig()

	pkg.AssertNoError(blockgen.DB.AutoMigrate(
		&models.Project{},
		&models.Generation{},
	), "Failed to migrate database")
	blockgen.Logger.Info().Msg("Database migrated successfully")
	if cfg.Mode == "dev" {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(cfg.ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	generationService := service.NewGenerationService()
	projectService := service.NewProjectService()

	processor := websocket.NewMessageProcessor(generationService, projectService, blockgen.Logger)
	hub := websocket.NewHub(blockgen.Logger)
	go hub.Run()
	blockgen.Logger.Info().Msg("WebSocket hub started")

	bridge := realtime.NewBridge(blockgen.NATS, cfg.NatsConfig.SubjectPrefix, blockgen.Logger)
	pkg.AssertNoError(bridge.Subscribe(hub.DeliverGenerated), "Failed to subscribe to generation events")
	defer bridge.Close()
	defer blockgen.NATS.Drain()

	initAPI(router, hub, processor, projectService, generationService)

	blockgen.Logger.Debug().Msgf("Starting blockgen API on port %s", cfg.ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		blockgen.Logger.Fatal().Msg(err.Error())
	}
}

func initAPI(router *graceful.Graceful, hub *websocket.Hub, processor *websocket.MessageProcessor, projectService *service.ProjectService, generationService *service.GenerationService) {
	endpoints.GenerateHandler(router, generationService)
	endpoints.ProjectHandler(router, projectService, generationService)
	endpoints.WebSocketHandler(router, hub, processor, projectService)
}
