package usecase_test

import (
	"net/http"
	"testing"

	"fooddelivery/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func newCartUsecase() *usecase.CartUsecase {
	return usecase.NewCartUsecase(fixedIDGen{id: "session-1"})
}

func addInput(id string, priceStr string, qty int64) usecase.AddCartItemInput {
	return usecase.AddCartItemInput{
		MenuItemID: id,
		Name:       "item-" + id,
		Price:      dec(priceStr),
		Quantity:   qty,
	}
}

func TestCartUsecase_GetUnknownSessionIsEmpty(t *testing.T) {
	uc := newCartUsecase()

	out := uc.Get("nope")
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.TotalItems)
	assert.True(t, out.Subtotal.IsZero())
}

func TestCartUsecase_AddAndTotals(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	out, err := uc.AddItem("s1", addInput("m2", "4.99", 1))
	assert.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalItems)
	assert.True(t, out.Subtotal.Equal(dec("38.97")), "subtotal=%s", out.Subtotal)
}

func TestCartUsecase_SessionsAreIsolated(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	assert.Empty(t, uc.Get("s2").Items)
	assert.Len(t, uc.Get("s1").Items, 1)
}

func TestCartUsecase_AddItem_Invalid(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddItem("s1", addInput("", "1.00", 1))
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem("s1", addInput("m1", "1.00", 0))
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.AddItem("s1", addInput("m1", "-1.00", 1))
	assertHTTPStatus(t, err, http.StatusBadRequest)

	assert.Empty(t, uc.Get("s1").Items)
}

func TestCartUsecase_UpdateItem_ZeroRemoves(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	out, err := uc.UpdateItem("s1", "m1", 0)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCartUsecase_Clear(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.SwitchRestaurant("s1", usecase.SwitchRestaurantInput{RestaurantID: "1", RestaurantName: "Pizza Palace"})
	assert.NoError(t, err)
	_, err = uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	out := uc.Clear("s1")
	assert.Empty(t, out.Items)
	assert.Empty(t, out.RestaurantID)
}

func TestCartUsecase_SwitchRestaurantDropsItems(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.SwitchRestaurant("s1", usecase.SwitchRestaurantInput{RestaurantID: "1", RestaurantName: "Pizza Palace"})
	assert.NoError(t, err)
	_, err = uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	out, err := uc.SwitchRestaurant("s1", usecase.SwitchRestaurantInput{RestaurantID: "2", RestaurantName: "Burger Barn"})
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, "2", out.RestaurantID)
	assert.Equal(t, "Burger Barn", out.RestaurantName)
}

func TestCartUsecase_EndSessionDropsCart(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddItem("s1", addInput("m1", "16.99", 2))
	assert.NoError(t, err)

	uc.EndSession("s1")
	assert.Empty(t, uc.Get("s1").Items)
}
