package cart_test

import (
	"testing"

	"fooddelivery/internal/domain/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(id string, priceStr string, qty int64) cart.LineItem {
	return cart.LineItem{
		MenuItemID: id,
		Name:       "item-" + id,
		UnitPrice:  decimal.RequireFromString(priceStr),
		Quantity:   qty,
	}
}

func TestCart_Add_NewItem(t *testing.T) {
	c := cart.New().Add(line("m1", "16.99", 2))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].Quantity)
	assert.Equal(t, int64(2), c.TotalItems())
}

func TestCart_Add_SameItemIncrementsQuantity(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		Add(line("m1", "16.99", 3))

	//重複行は作らない
	assert.Len(t, c.Items, 1)
	assert.Equal(t, int64(5), c.Items[0].Quantity)
}

func TestCart_Add_KeepsInsertionOrder(t *testing.T) {
	c := cart.New().
		Add(line("m1", "1.00", 1)).
		Add(line("m2", "2.00", 1)).
		Add(line("m3", "3.00", 1)).
		Add(line("m1", "1.00", 1))

	assert.Equal(t, "m1", c.Items[0].MenuItemID)
	assert.Equal(t, "m2", c.Items[1].MenuItemID)
	assert.Equal(t, "m3", c.Items[2].MenuItemID)
}

func TestCart_Add_ZeroQuantityIsNoop(t *testing.T) {
	c := cart.New().Add(line("m1", "16.99", 0))
	assert.Empty(t, c.Items)
}

func TestCart_Remove(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		Add(line("m2", "4.99", 1)).
		Remove("m1")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "m2", c.Items[0].MenuItemID)
}

func TestCart_Remove_AbsentIsIdempotent(t *testing.T) {
	c := cart.New().Add(line("m1", "16.99", 2))

	assert.Equal(t, c, c.Remove("missing"))
}

func TestCart_UpdateQuantity_Sets(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		UpdateQuantity("m1", 7)

	//加算ではなく置き換え
	assert.Equal(t, int64(7), c.Items[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemoves(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		UpdateQuantity("m1", 0)

	assert.Empty(t, c.Items)
}

func TestCart_UpdateQuantity_NegativeRemoves(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		UpdateQuantity("m1", -3)

	assert.Empty(t, c.Items)
}

func TestCart_Clear_ResetsItemsAndRestaurant(t *testing.T) {
	c := cart.New().
		SetRestaurant("r1", "Pizza Palace").
		Add(line("m1", "16.99", 2)).
		Clear()

	assert.Empty(t, c.Items)
	assert.Empty(t, c.RestaurantID)
	assert.Empty(t, c.RestaurantName)
}

func TestCart_SetRestaurant_DoesNotClearItems(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		SetRestaurant("r1", "Pizza Palace")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "r1", c.RestaurantID)
}

func TestCart_SwitchRestaurant_ClearsThenSets(t *testing.T) {
	c := cart.New().
		SetRestaurant("r1", "Pizza Palace").
		Add(line("m1", "16.99", 2)).
		SwitchRestaurant("r2", "Burger Barn")

	assert.Empty(t, c.Items)
	assert.Equal(t, "r2", c.RestaurantID)
	assert.Equal(t, "Burger Barn", c.RestaurantName)
}

func TestCart_OperationsDoNotMutateOriginal(t *testing.T) {
	orig := cart.New().Add(line("m1", "16.99", 2))

	_ = orig.Add(line("m2", "4.99", 1))
	_ = orig.UpdateQuantity("m1", 9)
	_ = orig.Remove("m1")
	_ = orig.SwitchRestaurant("r2", "Burger Barn")

	assert.Len(t, orig.Items, 1)
	assert.Equal(t, int64(2), orig.Items[0].Quantity)
}

func TestCart_TotalItems_MatchesFinalQuantities(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		Add(line("m2", "4.99", 1)).
		Add(line("m1", "16.99", 1)).
		UpdateQuantity("m2", 4).
		Remove("m3").
		Add(line("m3", "8.99", 2)).
		UpdateQuantity("m3", 0)

	var sum int64
	for _, it := range c.Items {
		assert.GreaterOrEqual(t, it.Quantity, int64(1))
		sum += it.Quantity
	}
	assert.Equal(t, sum, c.TotalItems())
	assert.Equal(t, int64(7), c.TotalItems())
}

func TestCart_Subtotal_ExactDecimal(t *testing.T) {
	c := cart.New().
		Add(line("m1", "16.99", 2)).
		Add(line("m2", "4.99", 1))

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("38.97")), "got %s", c.Subtotal())
}

func TestCart_Subtotal_OrderIndependent(t *testing.T) {
	a := cart.New().
		Add(line("m1", "16.99", 1)).
		Add(line("m2", "4.99", 2)).
		Add(line("m1", "16.99", 1))

	b := cart.New().
		Add(line("m2", "4.99", 1)).
		Add(line("m1", "16.99", 2)).
		Add(line("m2", "4.99", 1))

	//同じ(menuItemId, quantity)の多重集合なら小計も同じ
	assert.True(t, a.Subtotal().Equal(b.Subtotal()))
	assert.Equal(t, a.TotalItems(), b.TotalItems())
}

func TestCart_EmptySubtotalIsZero(t *testing.T) {
	assert.True(t, cart.New().Subtotal().IsZero())
	assert.Equal(t, int64(0), cart.New().TotalItems())
}
