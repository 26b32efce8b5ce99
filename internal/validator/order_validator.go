package validator

import (
	"errors"
	"regexp"
	"strings"

	"fooddelivery/internal/domain/model"
	"fooddelivery/internal/usecase"
)

var (
	// 注文者情報が不足
	ErrMissingCustomer = errors.New("name, email and phone are required")

	// emailの形式が不正
	ErrInvalidEmail = errors.New("invalid email")

	// 配達先が不足
	ErrMissingAddress = errors.New("delivery address is required")

	// 店舗IDが不正
	ErrInvalidRestaurant = errors.New("invalid restaurantId")

	// 明細が空
	ErrNoItems = errors.New("order must contain at least one item")

	// 数量が不正
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")

	// 支払い方法が不正
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文作成の入力を検証
func (v *orderValidator) ValidateCreateOrder(in usecase.PlaceOrderInput) error {
	name := strings.TrimSpace(in.Customer.Name)
	email := strings.TrimSpace(in.Customer.Email)
	phone := strings.TrimSpace(in.Customer.Phone)

	// 必須チェック
	if name == "" || email == "" || phone == "" {
		return ErrMissingCustomer
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidEmail
	}

	// 配達先
	addr := in.Customer.Address
	if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" {
		return ErrMissingAddress
	}

	if in.RestaurantID <= 0 {
		return ErrInvalidRestaurant
	}

	if len(in.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.MenuItemID) == "" || item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}

	if !model.PaymentMethod(in.PaymentMethod).Valid() {
		return ErrInvalidPaymentMethod
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
