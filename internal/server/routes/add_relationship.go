package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
	"kgserver/pkg/logger"
)

// AddRelationshipHandler inserts a single labeled relationship into the
// graph and returns the updated visualization payload.
func AddRelationshipHandler(c echo.Context) error {
	type addRelationshipBody struct {
		Entity1      string `json:"entity1" validate:"required"`
		Relationship string `json:"relationship" validate:"required"`
		Entity2      string `json:"entity2" validate:"required"`
	}

	type addRelationshipResponse struct {
		Success   bool       `json:"success"`
		Message   string     `json:"message"`
		GraphData graph.Data `json:"graph_data"`
	}

	data := new(addRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, fail("All fields (Entity 1, Relationship, Entity 2) are required"))
	}

	entity1 := strings.TrimSpace(data.Entity1)
	relationship := strings.TrimSpace(data.Relationship)
	entity2 := strings.TrimSpace(data.Entity2)
	if entity1 == "" || relationship == "" || entity2 == "" {
		return c.JSON(http.StatusBadRequest, fail("All fields (Entity 1, Relationship, Entity 2) are required"))
	}

	store := c.(*middleware.AppContext).App.Graph
	if err := store.AddRelationship(entity1, relationship, entity2); err != nil {
		logger.Error("Failed to add relationship", "err", err)
		return c.JSON(http.StatusInternalServerError, fail("Error adding relationship"))
	}

	return c.JSON(http.StatusOK, addRelationshipResponse{
		Success:   true,
		Message:   fmt.Sprintf("Relationship added: %s --[%s]--> %s", entity1, relationship, entity2),
		GraphData: store.Snapshot(),
	})
}
