package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// 注文者情報。orders.customer（jsonb）に埋め込む。
type Customer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// 注文明細。注文時点のメニュー名・価格のスナップショット。
type OrderLine struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int64           `json:"quantity"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// 注文。作成後は status / payment_status / actual_delivery_time 以外は不変。
type Order struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber           string          `gorm:"type:varchar(32);not null;uniqueIndex" json:"orderNumber"`
	Customer              Customer        `gorm:"serializer:json;type:jsonb" json:"user"`
	RestaurantID          int64           `gorm:"not null;index" json:"restaurantId"`
	Items                 []OrderLine     `gorm:"serializer:json;type:jsonb" json:"items"`
	Subtotal              decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"subtotal"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"deliveryFee"`
	Tax                   decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"tax"`
	Total                 decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"total"`
	Status                OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod         PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	PaymentStatus         PaymentStatus   `gorm:"type:varchar(20);not null" json:"paymentStatus"`
	EstimatedDeliveryTime time.Time       `gorm:"not null" json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time      `json:"actualDeliveryTime,omitempty"`
	SpecialInstructions   string          `gorm:"type:text" json:"specialInstructions"`
	CreatedAt             time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 2桁表示の合計（保存値は丸めない）
func (o Order) DisplayTotal() string {
	return o.Total.StringFixed(2)
}
