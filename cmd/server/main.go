package main

import (
	"log"

	"mealdash-be/internal/cart"
	"mealdash-be/internal/category"
	"mealdash-be/internal/config"
	"mealdash-be/internal/courier"
	"mealdash-be/internal/db"
	"mealdash-be/internal/handler"
	"mealdash-be/internal/logger"
	"mealdash-be/internal/order"
	"mealdash-be/internal/product"
	"mealdash-be/internal/review"
	"mealdash-be/internal/store"
	"mealdash-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	storeRepo := store.NewRepository(database)
	storeSvc := store.NewService(storeRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	courierRepo := courier.NewRepository(database)
	courierSvc := courier.NewService(courierRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, courierRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	router := handler.NewRouter(handler.Services{
		User:     userSvc,
		Category: categorySvc,
		Store:    storeSvc,
		Product:  productSvc,
		Courier:  courierSvc,
		Cart:     cartSvc,
		Order:    orderSvc,
		Review:   reviewSvc,
	})

	log.Printf("🚀 server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
