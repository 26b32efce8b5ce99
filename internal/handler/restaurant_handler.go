package handler

import (
	"net/http"
	"strconv"

	"fooddelivery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /restaurants の公開API
type RestaurantHandler struct {
	uc *usecase.RestaurantUsecase
}

// DI
func NewRestaurantHandler(uc *usecase.RestaurantUsecase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// カタログのルートを登録
func (h *RestaurantHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/restaurants", h.list)
	e.GET("/restaurants/:id", h.detail)
	e.GET("/restaurants/:id/menu", h.menu)
	e.GET("/restaurants/cuisines/list", h.cuisines)
	e.GET("/restaurants/categories/list", h.categories)
}

func (h *RestaurantHandler) list(c echo.Context) error {
	out, err := h.uc.ListRestaurants(c.Request().Context(), usecase.ListRestaurantsInput{
		Search:   c.QueryParam("search"),
		Cuisine:  c.QueryParam("cuisine"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RestaurantHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RestaurantHandler) menu(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetMenu(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RestaurantHandler) cuisines(c echo.Context) error {
	out, err := h.uc.ListCuisines(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RestaurantHandler) categories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
