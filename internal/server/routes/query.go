package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
	"kgserver/pkg/logger"
)

// QueryGraphHandler answers analytical queries about a single entity:
// neighbors, shortest paths to reachable entities, centrality, or all
// three combined.
func QueryGraphHandler(c echo.Context) error {
	type queryBody struct {
		Entity    string `json:"entity" validate:"required"`
		QueryType string `json:"query_type"`
	}

	type queryResponse struct {
		Success   bool          `json:"success"`
		Entity    string        `json:"entity"`
		QueryType string        `json:"query_type"`
		Results   graph.Results `json:"results"`
	}

	data := new(queryBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Entity name is required for query"))
	}

	entity := strings.TrimSpace(data.Entity)
	if entity == "" {
		return c.JSON(http.StatusBadRequest, fail("Entity name is required for query"))
	}

	store := c.(*middleware.AppContext).App.Graph
	results, err := store.Query(entity, data.QueryType)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			return c.JSON(http.StatusNotFound, fail(fmt.Sprintf("Entity \"%s\" not found in the graph", entity)))
		}
		logger.Error("Failed to query graph", "entity", entity, "err", err)
		return c.JSON(http.StatusInternalServerError, fail("Error querying graph"))
	}

	return c.JSON(http.StatusOK, queryResponse{
		Success:   true,
		Entity:    entity,
		QueryType: data.QueryType,
		Results:   results,
	})
}
