package handler

import (
	"net/http"
	"strconv"

	"fooddelivery/internal/config"
	"fooddelivery/internal/middleware"
	"fooddelivery/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	User                usecase.CustomerInput    `json:"user"`
	RestaurantID        int64                    `json:"restaurantId"`
	Items               []usecase.OrderItemInput `json:"items"`
	PaymentMethod       string                   `json:"paymentMethod"`
	SpecialInstructions string                   `json:"specialInstructions"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderCreateResponse struct {
	Message string                     `json:"message"`
	Order   usecase.OrderSummaryOutput `json:"order"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/orders", h.create)
	e.GET("/orders/:id", h.detail)
	e.GET("/orders/user/:email", h.listByEmail)

	// ステータス変更は店舗スタッフのみ
	e.PUT("/orders/:id/status", h.updateStatus, middleware.StaffJWT(cfg))
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Customer:            req.User,
		RestaurantID:        req.RestaurantID,
		Items:               req.Items,
		PaymentMethod:       req.PaymentMethod,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreateResponse{
		Message: "Order created successfully",
		Order:   out,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{
		Message: "Order status updated successfully",
		Order:   out,
	})
}

func (h *OrderHandler) listByEmail(c echo.Context) error {
	out, err := h.uc.ListByCustomerEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
