package routes

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
	"kgserver/pkg/logger"
)

// ClearGraphHandler discards all custom data and reloads the sample set.
func ClearGraphHandler(c echo.Context) error {
	type clearGraphResponse struct {
		Success   bool       `json:"success"`
		Message   string     `json:"message"`
		GraphData graph.Data `json:"graph_data"`
	}

	store := c.(*middleware.AppContext).App.Graph
	nodes, edges := store.Reset()
	logger.Info("Graph cleared and reseeded", "removed_nodes", nodes, "removed_edges", edges)

	return c.JSON(http.StatusOK, clearGraphResponse{
		Success:   true,
		Message:   fmt.Sprintf("Graph cleared and reset. Removed %d nodes and %d edges.", nodes, edges),
		GraphData: store.Snapshot(),
	})
}
