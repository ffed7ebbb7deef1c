package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
)

// GetGraphStatsHandler returns whole-graph metrics: counts, weak
// connectivity, density, and average degree.
func GetGraphStatsHandler(c echo.Context) error {
	type graphStatsResponse struct {
		Success bool        `json:"success"`
		Stats   graph.Stats `json:"stats"`
	}

	store := c.(*middleware.AppContext).App.Graph

	return c.JSON(http.StatusOK, graphStatsResponse{
		Success: true,
		Stats:   store.Statistics(),
	})
}
