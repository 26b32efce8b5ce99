package main

import (
	"fmt"
	"os"
	"time"

	"fooddelivery/internal/config"
	"fooddelivery/internal/domain/model"
	"fooddelivery/internal/handler"
	"fooddelivery/internal/infra/db"
	infraRepo "fooddelivery/internal/infra/repository"
	"fooddelivery/internal/server"
	"fooddelivery/internal/usecase"
	"fooddelivery/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（prodは環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "db connect: %v\n", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Restaurant{},
		&model.Order{},
	); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	restaurantRepo := infraRepo.NewRestaurantGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	orderValidator := validator.NewOrderValidator()

	//Usecase生成
	restaurantUC := usecase.NewRestaurantUsecase(restaurantRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, restaurantRepo, orderValidator, idGen, clock, cfg.TaxRate)
	cartUC := usecase.NewCartUsecase(idGen)

	//Handler生成
	restaurantH := handler.NewRestaurantHandler(restaurantUC)
	orderH := handler.NewOrderHandler(orderUC)
	cartH := handler.NewCartHandler(cartUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, restaurantH, orderH, cartH); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
