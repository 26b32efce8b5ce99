package handler

import (
	"net/http"

	"fooddelivery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const cartSessionCookie = "cart_session"

// /cartのHTTP。カートはセッション（cookie）単位。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int64           `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type SwitchRestaurantRequest struct {
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.get)
	e.POST("/cart/items", h.addItem)
	e.PATCH("/cart/items/:menuItemId", h.updateItem)
	e.DELETE("/cart/items/:menuItemId", h.removeItem)
	e.DELETE("/cart", h.clear)
	e.PUT("/cart/restaurant", h.switchRestaurant)
	e.DELETE("/cart/session", h.endSession)
}

// cookieからセッションIDを取る。無ければ発番してセットする。
func (h *CartHandler) session(c echo.Context) string {
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := h.uc.NewSession()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func (h *CartHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Get(h.session(c)))
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(h.session(c), usecase.AddCartItemInput{
		MenuItemID:          req.MenuItemID,
		Name:                req.Name,
		Price:               req.Price,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItem(h.session(c), c.Param("menuItemId"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(h.session(c), c.Param("menuItemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Clear(h.session(c)))
}

func (h *CartHandler) switchRestaurant(c echo.Context) error {
	var req SwitchRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SwitchRestaurant(h.session(c), usecase.SwitchRestaurantInput{
		RestaurantID:   req.RestaurantID,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// セッション破棄（ログアウト相当）。カートは復元しない。
func (h *CartHandler) endSession(c echo.Context) error {
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		h.uc.EndSession(ck.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
