package endpoints

import (
	"blockgen/internal/api/handler/response"
	"blockgen/internal/api/service"
	"blockgen/internal/gen"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// writeGenerationError maps a failed pass to a status code. Rejected input
// carries the failing block in Data when the generator knows it.
func writeGenerationError(c *gin.Context, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWorkspace):
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
	case errors.Is(err, service.ErrGenerationFailed):
		data := gin.H{}
		var be *gen.BlockError
		if errors.As(err, &be) {
			data["blockId"] = be.BlockID
			data["kind"] = be.Kind
		}
		var ue *gen.UnhandledOptionError
		if errors.As(err, &ue) {
			data["field"] = ue.Field
			data["option"] = ue.Option
		}
		c.JSON(http.StatusUnprocessableEntity, response.APIError{Message: err.Error(), Data: data})
	default:
		logger.Error().Err(err).Msg("Generation failed unexpectedly")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to generate code"})
	}
}
