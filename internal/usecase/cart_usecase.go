package usecase

import (
	"net/http"
	"sync"

	"fooddelivery/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッション単位のカートを預かる。
// カートはメモリ上の値だけ。永続化せず、セッション終了で破棄する。
// 金額は表示用。確定計算は注文時にサーバー側で引き直す。
type CartUsecase struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
	idGen IDGenerator
}

// DI
func NewCartUsecase(idGen IDGenerator) *CartUsecase {
	return &CartUsecase{
		carts: map[string]cart.Cart{},
		idGen: idGen,
	}
}

type CartOutput struct {
	Items          []cart.LineItem `json:"items"`
	RestaurantID   string          `json:"restaurantId,omitempty"`
	RestaurantName string          `json:"restaurantName,omitempty"`
	TotalItems     int64           `json:"totalItems"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type AddCartItemInput struct {
	MenuItemID          string
	Name                string
	Price               decimal.Decimal
	Quantity            int64
	SpecialInstructions string
}

type SwitchRestaurantInput struct {
	RestaurantID   string
	RestaurantName string
}

// NewSession はセッションIDを発番する。
func (u *CartUsecase) NewSession() string {
	return u.idGen.NewID()
}

func (u *CartUsecase) Get(sessionID string) CartOutput {
	u.mu.Lock()
	defer u.mu.Unlock()
	return toCartOutput(u.current(sessionID))
}

func (u *CartUsecase) AddItem(sessionID string, in AddCartItemInput) (CartOutput, error) {
	if in.MenuItemID == "" {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menuItemId")
	}
	if in.Quantity < 1 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if in.Price.IsNegative() {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.current(sessionID).Add(cart.LineItem{
		MenuItemID:          in.MenuItemID,
		Name:                in.Name,
		UnitPrice:           in.Price,
		Quantity:            in.Quantity,
		SpecialInstructions: in.SpecialInstructions,
	})
	u.carts[sessionID] = next
	return toCartOutput(next), nil
}

// 数量は置き換え。0以下で削除。
func (u *CartUsecase) UpdateItem(sessionID string, menuItemID string, qty int64) (CartOutput, error) {
	if menuItemID == "" {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menuItemId")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.current(sessionID).UpdateQuantity(menuItemID, qty)
	u.carts[sessionID] = next
	return toCartOutput(next), nil
}

func (u *CartUsecase) RemoveItem(sessionID string, menuItemID string) (CartOutput, error) {
	if menuItemID == "" {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menuItemId")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.current(sessionID).Remove(menuItemID)
	u.carts[sessionID] = next
	return toCartOutput(next), nil
}

func (u *CartUsecase) Clear(sessionID string) CartOutput {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.current(sessionID).Clear()
	u.carts[sessionID] = next
	return toCartOutput(next)
}

// SwitchRestaurant はクリア＋店舗設定を1操作で行う。
func (u *CartUsecase) SwitchRestaurant(sessionID string, in SwitchRestaurantInput) (CartOutput, error) {
	if in.RestaurantID == "" {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid restaurantId")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.current(sessionID).SwitchRestaurant(in.RestaurantID, in.RestaurantName)
	u.carts[sessionID] = next
	return toCartOutput(next), nil
}

// EndSession はカートを破棄する（ログアウト相当）。
func (u *CartUsecase) EndSession(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.carts, sessionID)
}

// ロック保持前提
func (u *CartUsecase) current(sessionID string) cart.Cart {
	if c, ok := u.carts[sessionID]; ok {
		return c
	}
	return cart.New()
}

func toCartOutput(c cart.Cart) CartOutput {
	return CartOutput{
		Items:          c.Items,
		RestaurantID:   c.RestaurantID,
		RestaurantName: c.RestaurantName,
		TotalItems:     c.TotalItems(),
		Subtotal:       c.Subtotal(),
	}
}
