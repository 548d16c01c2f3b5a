package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skillbridge/pkg/models"
)

// DashboardHandler returns candidate heatmap/rankings for recruiters.
// Mocked: a fixed dataset until real candidate aggregation lands.
func DashboardHandler(c echo.Context) error {
	response := models.DashboardResponse{
		Candidates: []models.Candidate{
			{
				Name:           "Alice Smith",
				Skills:         []string{"Python", "FastAPI"},
				MatchScore:     95,
				VerifiedBadges: []string{"Python Master"},
			},
			{
				Name:           "Bob Jones",
				Skills:         []string{"React", "Node.js"},
				MatchScore:     88,
				VerifiedBadges: []string{"React Pro"},
			},
			{
				Name:           "Charlie Brown",
				Skills:         []string{"Python"},
				MatchScore:     60,
				VerifiedBadges: []string{},
			},
		},
	}

	return c.JSON(http.StatusOK, response)
}
