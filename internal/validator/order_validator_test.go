package validator_test

import (
	"testing"

	"fooddelivery/internal/domain/model"
	"fooddelivery/internal/usecase"
	"fooddelivery/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		Customer: usecase.CustomerInput{
			Name:    "Jordan Lee",
			Email:   "jordan@example.com",
			Phone:   "(555) 000-1111",
			Address: model.Address{Street: "1 Elm St", City: "New York"},
		},
		RestaurantID:  1,
		Items:         []usecase.OrderItemInput{{MenuItemID: "m1", Quantity: 1}},
		PaymentMethod: "cash",
	}
}

func TestValidateCreateOrder_OK(t *testing.T) {
	v := validator.NewOrderValidator()
	assert.NoError(t, v.ValidateCreateOrder(validInput()))
}

func TestValidateCreateOrder_MissingCustomer(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.Customer.Name = "  "
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrMissingCustomer)

	in = validInput()
	in.Customer.Phone = ""
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrMissingCustomer)
}

func TestValidateCreateOrder_BadEmail(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.Customer.Email = "not-an-email"
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrInvalidEmail)
}

func TestValidateCreateOrder_MissingAddress(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.Customer.Address.City = ""
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrMissingAddress)
}

func TestValidateCreateOrder_BadRestaurant(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.RestaurantID = 0
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrInvalidRestaurant)
}

func TestValidateCreateOrder_EmptyItems(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.Items = nil
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrNoItems)
}

func TestValidateCreateOrder_BadQuantity(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.Items = []usecase.OrderItemInput{{MenuItemID: "m1", Quantity: 0}}
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrInvalidQuantity)

	in.Items = []usecase.OrderItemInput{{MenuItemID: "", Quantity: 2}}
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrInvalidQuantity)
}

func TestValidateCreateOrder_BadPaymentMethod(t *testing.T) {
	v := validator.NewOrderValidator()

	in := validInput()
	in.PaymentMethod = "bitcoin"
	assert.ErrorIs(t, v.ValidateCreateOrder(in), validator.ErrInvalidPaymentMethod)

	for _, m := range []string{"cash", "card", "online"} {
		in.PaymentMethod = m
		assert.NoError(t, v.ValidateCreateOrder(in), "method %s", m)
	}
}
