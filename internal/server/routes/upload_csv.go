package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"kgserver/internal/server/middleware"
	"kgserver/pkg/graph"
	csvloader "kgserver/pkg/loader/csv"
	"kgserver/pkg/logger"
)

// UploadCSVHandler bulk-imports relationships from an uploaded CSV file.
// Partial success is normal: failed rows are reported per row while the
// remaining rows are still applied.
func UploadCSVHandler(c echo.Context) error {
	type uploadCSVResponse struct {
		Success    bool       `json:"success"`
		Message    string     `json:"message"`
		AddedCount int        `json:"added_count"`
		Errors     []string   `json:"errors"`
		GraphData  graph.Data `json:"graph_data"`
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("No file provided"))
	}
	if file.Filename == "" {
		return c.JSON(http.StatusBadRequest, fail("No file selected"))
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Could not open file"))
	}
	defer src.Close()

	store := c.(*middleware.AppContext).App.Graph
	result, err := csvloader.Load(src, store.AddRelationship)
	if err != nil {
		if errors.Is(err, csvloader.ErrMissingColumns) {
			return c.JSON(http.StatusBadRequest, fail(err.Error()))
		}
		logger.Error("Failed to process CSV", "err", err)
		return c.JSON(http.StatusInternalServerError, fail("Error processing CSV"))
	}

	return c.JSON(http.StatusOK, uploadCSVResponse{
		Success:    true,
		Message:    fmt.Sprintf("Successfully added %d relationships from CSV", result.Added),
		AddedCount: result.Added,
		Errors:     result.Errors,
		GraphData:  store.Snapshot(),
	})
}
