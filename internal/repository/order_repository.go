package repository

import (
	"context"
	"time"

	"fooddelivery/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByCustomerEmail(ctx context.Context, email string, limit int) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// ステータス更新。deliveredのときだけ actual_delivery_time を刻む。
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actualDeliveryTime *time.Time) (model.Order, error)
}
