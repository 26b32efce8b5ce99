package repository

import (
	"context"
	"errors"

	"fooddelivery/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type RestaurantListQuery struct {
	Search   string
	Cuisine  string
	Category string
	Sort     string // rating / name / deliveryTime
	Limit    int
}

// 店舗カタログの永続化（保存・取得）だけを約束。
type RestaurantRepository interface {
	List(ctx context.Context, q RestaurantListQuery) ([]model.Restaurant, error)
	FindByID(ctx context.Context, id int64) (model.Restaurant, error)

	Create(ctx context.Context, r model.Restaurant) (model.Restaurant, error)

	ListCuisines(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
}
