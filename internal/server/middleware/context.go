package middleware

import (
	"github.com/labstack/echo/v4"

	"kgserver/pkg/graph"
)

// App bundles the shared application dependencies handed to handlers.
type App struct {
	Graph *graph.Store
}

// AppContext wraps the echo context with the application dependencies.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the shared graph store into every request
// context.
func AppContextMiddleware(store *graph.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				Graph: store,
			}
			return next(&AppContext{c, app})
		}
	}
}
