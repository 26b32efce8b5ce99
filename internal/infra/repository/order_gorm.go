package repository

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/domain/model"
	repo "fooddelivery/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// メールアドレスで注文履歴を新しい順に取得
func (r *OrderGormRepository) ListByCustomerEmail(ctx context.Context, email string, limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 10
	}

	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("customer->>'email' = ?", email).
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// ステータス更新。行ロックの上で書き換えて更新後の注文を返す。
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actualDeliveryTime *time.Time) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}
		if actualDeliveryTime != nil {
			updates["actual_delivery_time"] = *actualDeliveryTime
		}

		res := tx.Model(&model.Order{}).Where("id = ?", orderID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		o.Status = status
		if actualDeliveryTime != nil {
			o.ActualDeliveryTime = actualDeliveryTime
		}
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
