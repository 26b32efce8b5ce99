package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fooddelivery/internal/domain/model"
	repo "fooddelivery/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type RestaurantUsecase struct {
	restaurantRepo repo.RestaurantRepository
}

// DI
func NewRestaurantUsecase(restaurantRepo repo.RestaurantRepository) *RestaurantUsecase {
	return &RestaurantUsecase{restaurantRepo: restaurantRepo}
}

// GET /restaurantsの入力DTO
type ListRestaurantsInput struct {
	Search   string
	Cuisine  string
	Category string
	Sort     string
}

// 一覧はカード表示向けの抜粋を返す（メニュー等は含めない）
type RestaurantCard struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Cuisine               string   `json:"cuisine"`
	Rating                string   `json:"rating"`
	ReviewCount           int64    `json:"reviewCount"`
	DeliveryFee           string   `json:"deliveryFee"`
	MinimumOrder          string   `json:"minimumOrder"`
	EstimatedDeliveryTime int      `json:"estimatedDeliveryTime"`
	Image                 string   `json:"image"`
	Categories            []string `json:"categories"`
}

type MenuOutput struct {
	RestaurantName string           `json:"restaurantName"`
	Menu           []model.MenuItem `json:"menu"`
}

func (u *RestaurantUsecase) ListRestaurants(ctx context.Context, in ListRestaurantsInput) ([]RestaurantCard, error) {
	switch in.Sort {
	case "", "rating", "name", "deliveryTime":
	default:
		// 未知のソートはrating降順に倒す（旧API互換）
		in.Sort = "rating"
	}

	restaurants, err := u.restaurantRepo.List(ctx, repo.RestaurantListQuery{
		Search:   in.Search,
		Cuisine:  in.Cuisine,
		Category: in.Category,
		Sort:     in.Sort,
		Limit:    20,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cards := make([]RestaurantCard, 0, len(restaurants))
	for _, r := range restaurants {
		cards = append(cards, RestaurantCard{
			ID:                    r.ID,
			Name:                  r.Name,
			Description:           r.Description,
			Cuisine:               r.Cuisine,
			Rating:                r.Rating.StringFixed(1),
			ReviewCount:           r.ReviewCount,
			DeliveryFee:           r.DeliveryFee.StringFixed(2),
			MinimumOrder:          r.MinimumOrder.StringFixed(2),
			EstimatedDeliveryTime: r.EstimatedDeliveryTime,
			Image:                 r.Image,
			Categories:            r.Categories,
		})
	}
	return cards, nil
}

func (u *RestaurantUsecase) GetRestaurant(ctx context.Context, id int64) (model.Restaurant, error) {
	if id <= 0 {
		return model.Restaurant{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	r, err := u.restaurantRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Restaurant{}, NewHTTPError(http.StatusNotFound, "Restaurant not found")
	}
	if err != nil {
		return model.Restaurant{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

// GetMenu は提供可能なメニューだけを返す。
func (u *RestaurantUsecase) GetMenu(ctx context.Context, id int64) (MenuOutput, error) {
	r, err := u.GetRestaurant(ctx, id)
	if err != nil {
		return MenuOutput{}, err
	}

	return MenuOutput{
		RestaurantName: r.Name,
		Menu:           r.AvailableMenu(),
	}, nil
}

func (u *RestaurantUsecase) ListCuisines(ctx context.Context) ([]string, error) {
	cuisines, err := u.restaurantRepo.ListCuisines(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cuisines, nil
}

func (u *RestaurantUsecase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := u.restaurantRepo.ListCategories(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}
