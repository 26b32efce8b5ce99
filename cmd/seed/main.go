package main

import (
	"context"
	"fmt"
	"os"

	"fooddelivery/internal/domain/model"
	"fooddelivery/internal/infra/db"
	infraRepo "fooddelivery/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// 開発用のサンプルカタログ投入
func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "db connect: %v\n", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&model.Restaurant{}, &model.Order{}); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	repo := infraRepo.NewRestaurantGormRepository(gormDB)
	ctx := context.Background()

	for _, r := range sampleRestaurants() {
		created, err := repo.Create(ctx, r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed %s: %v\n", r.Name, err)
			os.Exit(1)
		}
		fmt.Printf("seeded restaurant %d: %s (%d menu items)\n", created.ID, created.Name, len(created.Menu))
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func menuItem(name, description, priceStr string, category model.MenuCategory, prepMinutes int) model.MenuItem {
	return model.MenuItem{
		ID:              uuid.NewString(),
		Name:            name,
		Description:     description,
		Price:           price(priceStr),
		Category:        category,
		IsAvailable:     true,
		PreparationTime: prepMinutes,
	}
}

func sampleRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{
			Name:        "Pizza Palace",
			Description: "Authentic Italian pizza with fresh ingredients and traditional recipes.",
			Cuisine:     "Italian",
			Address: model.Address{
				Street:      "123 Main St",
				City:        "New York",
				State:       "NY",
				ZipCode:     "10001",
				Coordinates: &model.Coordinates{Lat: 40.7505, Lng: -73.9934},
			},
			Phone:                 "(555) 123-4567",
			Email:                 "info@pizzapalace.com",
			Rating:                price("4.5"),
			ReviewCount:           128,
			DeliveryFee:           price("2.99"),
			MinimumOrder:          price("15"),
			EstimatedDeliveryTime: 25,
			IsOpen:                true,
			Categories:            []string{"pizza", "italian"},
			Menu: []model.MenuItem{
				menuItem("Margherita Pizza", "Classic pizza with tomato sauce, mozzarella, and fresh basil", "16.99", model.MenuCategoryMain, 20),
				menuItem("Pepperoni Pizza", "Spicy pepperoni with melted cheese and tomato sauce", "18.99", model.MenuCategoryMain, 20),
				menuItem("Garlic Bread", "Fresh baked bread with garlic butter and herbs", "4.99", model.MenuCategoryAppetizer, 10),
				menuItem("Caesar Salad", "Fresh romaine lettuce with Caesar dressing and croutons", "8.99", model.MenuCategoryAppetizer, 15),
				menuItem("Tiramisu", "Classic Italian dessert with coffee and mascarpone", "6.99", model.MenuCategoryDessert, 5),
				menuItem("Italian Soda", "Refreshing soda with Italian syrups", "3.99", model.MenuCategoryBeverage, 2),
			},
		},
		{
			Name:        "Burger Barn",
			Description: "Juicy burgers grilled to order with hand-cut fries.",
			Cuisine:     "American",
			Address: model.Address{
				Street:  "456 Oak Ave",
				City:    "New York",
				State:   "NY",
				ZipCode: "10002",
			},
			Phone:                 "(555) 234-5678",
			Email:                 "hello@burgerbarn.com",
			Rating:                price("4.2"),
			ReviewCount:           86,
			DeliveryFee:           price("1.99"),
			MinimumOrder:          price("10"),
			EstimatedDeliveryTime: 30,
			IsOpen:                true,
			Categories:            []string{"burger", "american"},
			Menu: []model.MenuItem{
				menuItem("Classic Cheeseburger", "Beef patty with cheddar, lettuce, tomato and house sauce", "11.99", model.MenuCategoryMain, 15),
				menuItem("Bacon Burger", "Double patty with crispy bacon and smoked cheddar", "14.49", model.MenuCategoryMain, 18),
				menuItem("Hand-Cut Fries", "Skin-on fries with sea salt", "4.49", model.MenuCategorySide, 8),
				menuItem("Chocolate Shake", "Thick shake with whipped cream", "5.99", model.MenuCategoryBeverage, 5),
			},
		},
		{
			Name:        "Sushi Zen",
			Description: "Fresh sushi and sashimi prepared by master chefs.",
			Cuisine:     "Japanese",
			Address: model.Address{
				Street:  "789 Cherry Blossom Ln",
				City:    "New York",
				State:   "NY",
				ZipCode: "10003",
			},
			Phone:                 "(555) 345-6789",
			Email:                 "info@sushizen.com",
			Rating:                price("4.8"),
			ReviewCount:           214,
			DeliveryFee:           price("3.99"),
			MinimumOrder:          price("20"),
			EstimatedDeliveryTime: 35,
			IsOpen:                true,
			Categories:            []string{"sushi"},
			Menu: []model.MenuItem{
				menuItem("Salmon Nigiri", "Two pieces of fresh salmon over rice", "6.99", model.MenuCategoryMain, 10),
				menuItem("California Roll", "Crab, avocado and cucumber, eight pieces", "9.99", model.MenuCategoryMain, 12),
				menuItem("Miso Soup", "Traditional soup with tofu and wakame", "3.49", model.MenuCategoryAppetizer, 5),
				menuItem("Green Tea", "Hot brewed sencha", "2.49", model.MenuCategoryBeverage, 3),
			},
		},
	}
}
