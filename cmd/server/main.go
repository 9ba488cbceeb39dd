package main

import (
	"log"
	"net/http"

	"shopline-be/internal/admin"
	"shopline-be/internal/config"
	"shopline-be/internal/db"
	"shopline-be/internal/logger"
	"shopline-be/internal/metrics"
	"shopline-be/internal/order"
	"shopline-be/internal/payment"
	"shopline-be/internal/product"
	"shopline-be/internal/transport"
	"shopline-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	paymentSvc := payment.NewService(orderRepo, payment.NewStubGateway())

	adminRepo := admin.NewRepository(database)
	adminSvc := admin.NewService(adminRepo)

	reg := metrics.NewRegistry()

	handler := transport.NewHandler(userSvc, productSvc, orderSvc, paymentSvc, adminSvc, database, reg)
	router := transport.NewRouter(handler)

	log.Printf("REST server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
