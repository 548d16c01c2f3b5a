package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// VerifyTaskHandler verifies a coding task submission.
// Mocked: a trivial check stands in for model-based code review.
func VerifyTaskHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()

	var submission models.TaskSubmission
	if err := c.Bind(&submission); err != nil {
		return writeError(c, requestID, "invalid_request",
			utils.NewBadRequestError("Invalid request format"))
	}

	if err := validate.Struct(&submission); err != nil {
		return writeError(c, requestID, "validation_failed",
			utils.NewValidationError(err.Error()))
	}

	isCorrect := strings.Contains(submission.Code, "print")

	response := models.TaskVerificationResponse{
		Verified: isCorrect,
		Feedback: "Try using print assertion.",
	}
	if isCorrect {
		badge := "Python Beginner"
		response.BadgeEarned = &badge
		response.Feedback = "Good job!"
	}

	return c.JSON(http.StatusOK, response)
}
