package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"furnistore/internal/handler"
)

// New builds the Echo instance with middleware and all routes registered.
func New(
	sofaH *handler.SofaHandler,
	tableH *handler.DiningTableHandler,
	mattressH *handler.MattressHandler,
	cartH *handler.CartHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// /sofas/ and /sofas are the same route
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// the UI is a browser client on another origin
	e.Use(middleware.CORS())

	handler.RegisterRoot(e)
	sofaH.RegisterRoutes(e)
	tableH.RegisterRoutes(e)
	mattressH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
