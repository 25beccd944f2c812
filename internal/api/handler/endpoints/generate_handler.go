package endpoints

import (
	"blockgen"
	"blockgen/internal/api/handler/mapper"
	"blockgen/internal/api/handler/middleware"
	"blockgen/internal/api/handler/request"
	"blockgen/internal/api/handler/response"
	"blockgen/internal/api/service"
	"blockgen/internal/blocks"
	"blockgen/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type generateHandler struct {
	generationService *service.GenerationService
	registry          *blocks.Registry
	config            blockgen.AppConfig
	logger            zerolog.Logger
}

func newGenerateHandler(generationService *service.GenerationService, config blockgen.AppConfig, logger zerolog.Logger) *generateHandler {
	return &generateHandler{
		generationService: generationService,
		registry:          blocks.DefaultRegistry,
		config:            config,
		logger:            logger,
	}
}

func GenerateHandler(router *graceful.Graceful, generationService *service.GenerationService) {
	registerGenerateRoutes(router.Engine, newGenerateHandler(generationService, blockgen.GetConfig(), blockgen.Logger))
}

func registerGenerateRoutes(router gin.IRouter, h *generateHandler) {
	routes := router.Group("/api/v1")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.POST("/generate", h.generate)
		routes.GET("/blocks", h.getBlocks)
		routes.GET("/toolbox", h.getToolbox)
		routes.POST("/toolbox", h.renderToolbox)
	}
}

// generate runs a pass over a workspace sent inline
func (slf *generateHandler) generate(c *gin.Context) {
	var req request.Generate
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Debug().Err(err).Msg("Failed to parse generate request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	result, err := slf.generationService.Generate(c.Request.Context(), req.Workspace, req.OneBasedIndex)
	if err != nil {
		writeGenerationError(c, slf.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getBlocks lists the custom block definitions with their built shapes
func (slf *generateHandler) getBlocks(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToBlockDefinitions(slf.registry.Definitions()))
}

func (slf *generateHandler) getToolbox(c *gin.Context) {
	slf.writeToolbox(c, blocks.DefaultToolbox(slf.registry))
}

// renderToolbox turns client-supplied categories into toolbox XML
func (slf *generateHandler) renderToolbox(c *gin.Context) {
	var req request.Toolbox
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}
	slf.writeToolbox(c, req.Categories)
}

func (slf *generateHandler) writeToolbox(c *gin.Context, categories []blocks.Category) {
	xml, err := blocks.ToolboxXML(categories)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to render toolbox")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to render toolbox"})
		return
	}
	c.JSON(http.StatusOK, response.Toolbox{Categories: categories, XML: xml})
}
