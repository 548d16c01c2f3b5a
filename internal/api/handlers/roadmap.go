package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skillbridge/internal/roadmap"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// GenerateRoadmapHandler handles learning roadmap generation requests
func GenerateRoadmapHandler(gen *roadmap.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := utils.LogWithRequestID(requestID)

		var req models.RoadmapRequest
		if err := c.Bind(&req); err != nil {
			logger.WithError(err).Error("Failed to bind roadmap request")
			return writeError(c, requestID, "invalid_request",
				utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.WithError(err).Error("Roadmap request validation failed")
			return writeError(c, requestID, "validation_failed",
				utils.NewValidationError(err.Error()))
		}

		result := gen.Generate(c.Request().Context(), req.MissingSkills, req.JobRole)

		if result.Error != "" {
			logger.WithField("error", result.Error).Error("Roadmap generation failed")
			return writeError(c, requestID, "roadmap_generation_failed",
				utils.NewInternalServerError(result.Error))
		}

		return c.JSON(http.StatusOK, result)
	}
}
