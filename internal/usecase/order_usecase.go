package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/domain/model"
	repo "fooddelivery/internal/repository"

	"github.com/shopspring/decimal"
)

// 注文番号などのID発番
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 注文入力の検証。実装は validator パッケージ。
type OrderValidator interface {
	ValidateCreateOrder(in PlaceOrderInput) error
}

type OrderUsecase struct {
	orderRepo      repo.OrderRepository
	restaurantRepo repo.RestaurantRepository
	validator      OrderValidator
	idGen          IDGenerator
	clock          Clock
	taxRate        decimal.Decimal
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	restaurantRepo repo.RestaurantRepository,
	validator OrderValidator,
	idGen IDGenerator,
	clock Clock,
	taxRate decimal.Decimal,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		validator:      validator,
		idGen:          idGen,
		clock:          clock,
		taxRate:        taxRate,
	}
}

type CustomerInput struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address model.Address `json:"address"`
}

// クライアントが送る明細。価格は受け取っても信用しない。
type OrderItemInput struct {
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	Quantity            int64  `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

type PlaceOrderInput struct {
	Customer            CustomerInput
	RestaurantID        int64
	Items               []OrderItemInput
	PaymentMethod       string
	SpecialInstructions string
}

// POST /orders のレスポンス
type OrderSummaryOutput struct {
	ID                    int64             `json:"id"`
	OrderNumber           string            `json:"orderNumber"`
	Total                 decimal.Decimal   `json:"total"`
	DisplayTotal          string            `json:"displayTotal"`
	EstimatedDeliveryTime time.Time         `json:"estimatedDeliveryTime"`
	Status                model.OrderStatus `json:"status"`
	ActualDeliveryTime    *time.Time        `json:"actualDeliveryTime,omitempty"`
}

// 注文詳細に載せる店舗情報（name/address/phoneのみ）
type OrderRestaurantRef struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Address model.Address `json:"address"`
	Phone   string        `json:"phone"`
}

type OrderDetailOutput struct {
	model.Order
	Restaurant OrderRestaurantRef   `json:"restaurant"`
	Progress   []model.ProgressStep `json:"progress,omitempty"`
}

// PlaceOrder は確定計算。
// 価格は店舗の現在メニューから引き直す。クライアントの金額は使わない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderSummaryOutput, error) {
	if err := u.validator.ValidateCreateOrder(in); err != nil {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	restaurant, err := u.restaurantRepo.FindByID(ctx, in.RestaurantID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusNotFound, "Restaurant not found")
	}
	if err != nil {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// メニュー照合＋小計。1件でも提供不可なら注文全体を拒否する。
	subtotal := decimal.Zero
	lines := make([]model.OrderLine, 0, len(in.Items))

	for _, item := range in.Items {
		menuItem, ok := restaurant.FindMenuItem(item.MenuItemID)
		if !ok || !menuItem.IsAvailable {
			name := item.Name
			if name == "" {
				name = item.MenuItemID
			}
			return OrderSummaryOutput{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Item %s is not available", name))
		}

		subtotal = subtotal.Add(menuItem.Price.Mul(decimal.NewFromInt(item.Quantity)))

		lines = append(lines, model.OrderLine{
			MenuItemID:          item.MenuItemID,
			Name:                menuItem.Name,
			Price:               menuItem.Price,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	if subtotal.LessThan(restaurant.MinimumOrder) {
		return OrderSummaryOutput{}, NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("Minimum order amount is $%s", restaurant.MinimumOrder.StringFixed(2)),
		)
	}

	deliveryFee := restaurant.DeliveryFee
	tax := subtotal.Mul(u.taxRate)
	total := subtotal.Add(deliveryFee).Add(tax)

	now := u.clock.Now()
	estimated := now.Add(time.Duration(restaurant.EstimatedDeliveryTime) * time.Minute)

	order := model.Order{
		OrderNumber: newOrderNumber(u.idGen),
		Customer: model.Customer{
			Name:    in.Customer.Name,
			Email:   in.Customer.Email,
			Phone:   in.Customer.Phone,
			Address: in.Customer.Address,
		},
		RestaurantID:          restaurant.ID,
		Items:                 lines,
		Subtotal:              subtotal,
		DeliveryFee:           deliveryFee,
		Tax:                   tax,
		Total:                 total,
		Status:                model.OrderStatusPending,
		PaymentMethod:         model.PaymentMethod(in.PaymentMethod),
		PaymentStatus:         model.PaymentStatusPending,
		EstimatedDeliveryTime: estimated,
		SpecialInstructions:   in.SpecialInstructions,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	orderID, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderSummaryOutput{
		ID:                    orderID,
		OrderNumber:           order.OrderNumber,
		Total:                 total,
		DisplayTotal:          order.DisplayTotal(),
		EstimatedDeliveryTime: estimated,
		Status:                order.Status,
	}, nil
}

// GetOrder は店舗情報（name/address/phone）を合わせて返す。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := OrderDetailOutput{
		Order:    o,
		Progress: model.ProgressSteps(o.Status),
	}

	r, err := u.restaurantRepo.FindByID(ctx, o.RestaurantID)
	if err == nil {
		out.Restaurant = OrderRestaurantRef{
			ID:      r.ID,
			Name:    r.Name,
			Address: r.Address,
			Phone:   r.Phone,
		}
	}

	return out, nil
}

// UpdateStatus は遷移表で検証してから更新する。
// deliveredのときだけ actual_delivery_time を刻む。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderSummaryOutput, error) {
	if orderID <= 0 {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	next := model.OrderStatus(status)
	if !next.Valid() {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !model.CanTransition(o.Status, next) {
		return OrderSummaryOutput{}, NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("Invalid status transition from %s to %s", o.Status, next),
		)
	}

	var deliveredAt *time.Time
	if next == model.OrderStatusDelivered {
		t := u.clock.Now()
		deliveredAt = &t
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, orderID, next, deliveredAt)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return OrderSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderSummaryOutput{
		ID:                    updated.ID,
		OrderNumber:           updated.OrderNumber,
		Total:                 updated.Total,
		DisplayTotal:          updated.DisplayTotal(),
		EstimatedDeliveryTime: updated.EstimatedDeliveryTime,
		Status:                updated.Status,
		ActualDeliveryTime:    updated.ActualDeliveryTime,
	}, nil
}

// ListByCustomerEmail は直近10件。店舗名だけを合わせて返す。
func (u *OrderUsecase) ListByCustomerEmail(ctx context.Context, email string) ([]OrderDetailOutput, error) {
	if email == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	orders, err := u.orderRepo.ListByCustomerEmail(ctx, email, 10)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderDetailOutput, 0, len(orders))
	for _, o := range orders {
		out := OrderDetailOutput{Order: o}
		if r, err := u.restaurantRepo.FindByID(ctx, o.RestaurantID); err == nil {
			out.Restaurant = OrderRestaurantRef{ID: r.ID, Name: r.Name}
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// 注文番号。uuidの先頭8桁を使う。
func newOrderNumber(idGen IDGenerator) string {
	id := idGen.NewID()
	if len(id) > 8 {
		id = id[:8]
	}
	return "FD-" + id
}
