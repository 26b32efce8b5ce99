package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/domain/model"
	repo "fooddelivery/internal/repository"

	"gorm.io/gorm"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

// DI
func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

// 営業中の店舗だけを、検索/絞り込み/ソート付きで返す。
func (r *RestaurantGormRepository) List(ctx context.Context, q repo.RestaurantListQuery) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant

	tx := r.db.WithContext(ctx).Model(&model.Restaurant{})

	// is_open=true のみ
	tx = tx.Where("is_open = ?", true)

	// name / cuisine / description を対象
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR cuisine ILIKE ? OR description ILIKE ?", like, like, like)
	}

	if q.Cuisine != "" {
		tx = tx.Where("cuisine = ?", q.Cuisine)
	}

	// categoriesはjsonb配列。包含で絞る。
	if q.Category != "" {
		tx = tx.Where("categories @> ?", fmt.Sprintf("[%q]", q.Category))
	}

	switch q.Sort {
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	case "deliveryTime":
		tx = tx.Order("estimated_delivery_time asc").Order("id asc")
	default:
		tx = tx.Order("rating desc").Order("id asc")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	if err := tx.Limit(limit).Find(&restaurants).Error; err != nil {
		return []model.Restaurant{}, err
	}

	return restaurants, nil
}

// IDで店舗を取得
func (r *RestaurantGormRepository) FindByID(ctx context.Context, id int64) (model.Restaurant, error) {
	var rest model.Restaurant
	err := r.db.WithContext(ctx).First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Restaurant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Restaurant{}, err
	}
	return rest, nil
}

// 店舗の作成（seed用）
func (r *RestaurantGormRepository) Create(ctx context.Context, rest model.Restaurant) (model.Restaurant, error) {
	if err := r.db.WithContext(ctx).Create(&rest).Error; err != nil {
		return model.Restaurant{}, err
	}
	return rest, nil
}

// cuisineの一覧（重複なし）
func (r *RestaurantGormRepository) ListCuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	err := r.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Distinct("cuisine").
		Order("cuisine asc").
		Pluck("cuisine", &cuisines).Error
	if err != nil {
		return []string{}, err
	}
	return cuisines, nil
}

// categoryの一覧。jsonb配列を展開してから重複を除く。
func (r *RestaurantGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Raw("SELECT DISTINCT jsonb_array_elements_text(categories) AS category FROM restaurants ORDER BY category").
		Scan(&categories).Error
	if err != nil {
		return []string{}, err
	}
	return categories, nil
}
