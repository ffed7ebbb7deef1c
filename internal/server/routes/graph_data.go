package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
)

// GetGraphDataHandler returns the full node and edge lists for the
// visualization frontend.
func GetGraphDataHandler(c echo.Context) error {
	type graphDataResponse struct {
		Success bool             `json:"success"`
		Nodes   []graph.Node     `json:"nodes"`
		Edges   []graph.Edge     `json:"edges"`
		Stats   graph.CountStats `json:"stats"`
	}

	store := c.(*middleware.AppContext).App.Graph
	data := store.Snapshot()

	return c.JSON(http.StatusOK, graphDataResponse{
		Success: true,
		Nodes:   data.Nodes,
		Edges:   data.Edges,
		Stats:   data.Stats,
	})
}
