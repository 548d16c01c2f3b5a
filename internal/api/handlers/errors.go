package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// writeError renders a CustomError as the standard error envelope. The slug
// is a stable machine-readable identifier; the message comes from the error.
func writeError(c echo.Context, requestID, slug string, cerr *utils.CustomError) error {
	return c.JSON(cerr.Code, models.ErrorResponse{
		Error:     slug,
		Message:   cerr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
