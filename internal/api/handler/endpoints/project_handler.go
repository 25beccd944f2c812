package endpoints

import (
	"blockgen"
	"blockgen/internal/api/handler/mapper"
	"blockgen/internal/api/handler/middleware"
	"blockgen/internal/api/handler/request"
	"blockgen/internal/api/handler/response"
	"blockgen/internal/api/models"
	"blockgen/internal/api/service"
	"blockgen/pkg"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type projectHandler struct {
	projectService    *service.ProjectService
	generationService *service.GenerationService
	config            blockgen.AppConfig
	logger            zerolog.Logger
}

func newProjectHandler(projectService *service.ProjectService, generationService *service.GenerationService, config blockgen.AppConfig, logger zerolog.Logger) *projectHandler {
	return &projectHandler{
		projectService:    projectService,
		generationService: generationService,
		config:            config,
		logger:            logger,
	}
}

func ProjectHandler(router *graceful.Graceful, projectService *service.ProjectService, generationService *service.GenerationService) {
	registerProjectRoutes(router.Engine, newProjectHandler(projectService, generationService, blockgen.GetConfig(), blockgen.Logger))
}

func registerProjectRoutes(router gin.IRouter, h *projectHandler) {
	routes := router.Group("/api/v1/projects")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)

		routes.POST("/:id/generate", h.generate)
		routes.GET("/:id/generations", h.getGenerations)
	}
}

func parseProjectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeProjectError answers the errors shared by every project route
func (slf *projectHandler) writeProjectError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.APIError{Message: "Project not found"})
	case errors.Is(err, service.ErrInvalidWorkspace):
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
	default:
		slf.logger.Error().Err(err).Msg("Failed to " + action + " project")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to " + action + " project"})
	}
}

func (slf *projectHandler) getAll(c *gin.Context) {
	projects, err := slf.projectService.FindAllForOwner(pkg.GetUserID(c))
	if err != nil {
		slf.writeProjectError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, mapper.ToProjectResponses(projects))
}

func (slf *projectHandler) getByID(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	project, err := slf.projectService.FindByID(id, pkg.GetUserID(c))
	if err != nil {
		slf.writeProjectError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, mapper.ToProjectResponse(project))
}

func (slf *projectHandler) create(c *gin.Context) {
	var req request.CreateProject
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Debug().Err(err).Msg("Failed to parse create project request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.projectService.Create(mapper.CreateProject(req, pkg.GetUserID(c)))
	if err != nil {
		slf.writeProjectError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToProjectResponse(created))
}

func (slf *projectHandler) update(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	var req request.UpdateProject
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Debug().Err(err).Msg("Failed to parse update project request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.projectService.Update(id, pkg.GetUserID(c), req.Name, req.Description, models.WorkspaceData(req.Workspace))
	if err != nil {
		slf.writeProjectError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, mapper.ToProjectResponse(updated))
}

func (slf *projectHandler) delete(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	if err := slf.projectService.Delete(id, pkg.GetUserID(c)); err != nil {
		slf.writeProjectError(c, err, "delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// generate runs the stored workspace and records the result
func (slf *projectHandler) generate(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	userID := pkg.GetUserID(c)
	project, err := slf.projectService.FindByID(id, userID)
	if err != nil {
		slf.writeProjectError(c, err, "get")
		return
	}

	generation, err := slf.generationService.GenerateProject(c.Request.Context(), project, userID)
	if err != nil && generation.ID == 0 {
		writeGenerationError(c, slf.logger, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.APIError{Message: err.Error(), Data: mapper.ToGenerationResponse(generation)})
		return
	}
	c.JSON(http.StatusOK, mapper.ToGenerationResponse(generation))
}

func (slf *projectHandler) getGenerations(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}
	if _, err := slf.projectService.FindByID(id, pkg.GetUserID(c)); err != nil {
		slf.writeProjectError(c, err, "get")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	generations, err := slf.generationService.History(id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to list generations"})
		return
	}
	c.JSON(http.StatusOK, mapper.ToGenerationResponses(generations))
}
