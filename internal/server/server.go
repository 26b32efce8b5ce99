package server

import (
	"fooddelivery/internal/config"
	"fooddelivery/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Start(
	addr string,
	cfg config.Config,
	restaurantH *handler.RestaurantHandler,
	orderH *handler.OrderHandler,
	cartH *handler.CartHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, restaurantH, orderH, cartH)

	return e.Start(addr)
}
