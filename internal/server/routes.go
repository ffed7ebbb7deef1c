package server

import (
	"path/filepath"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/routes"
	"kgserver/internal/util"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Visualization frontend
	staticDir := util.GetEnvString("STATIC_DIR", "static")
	e.File("/", filepath.Join(staticDir, "index.html"))

	apiRoutes := e.Group("/api")

	// Graph mutation routes
	apiRoutes.POST("/add_relationship", routes.AddRelationshipHandler)
	apiRoutes.POST("/upload_csv", routes.UploadCSVHandler)
	apiRoutes.POST("/clear_graph", routes.ClearGraphHandler)

	// Graph read routes
	apiRoutes.POST("/query", routes.QueryGraphHandler)
	apiRoutes.GET("/graph_data", routes.GetGraphDataHandler)
	apiRoutes.GET("/graph_stats", routes.GetGraphStatsHandler)
}
