package server

import (
	"net/http"

	"fooddelivery/internal/config"
	"fooddelivery/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	restaurantH *handler.RestaurantHandler,
	orderH *handler.OrderHandler,
	cartH *handler.CartHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	restaurantH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e)
}
