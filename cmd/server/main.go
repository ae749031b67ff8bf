package main

import (
	"log"
	"net/http"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/catalog"
	"bijoux-be/internal/checkout"
	"bijoux-be/internal/config"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/db"
	"bijoux-be/internal/logger"
	"bijoux-be/internal/mail"
	"bijoux-be/internal/order"
	"bijoux-be/internal/payment"
	"bijoux-be/internal/transport/rest"
	"bijoux-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	var sender mail.Sender
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	} else {
		sender = mail.LogSender{}
	}

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, catalogSvc)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, sender)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	processor := payment.NewSimulator(cfg.PaymentSuccessRate)
	processor.ForceTestMode = cfg.PaymentTestMode
	checkoutSvc := checkout.NewService(catalogSvc, customerSvc, orderRepo, processor, sender)

	handler := rest.NewHandler(catalogSvc, cartSvc, customerSvc, checkoutSvc, orderSvc, userSvc)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, rest.NewRouter(handler)))
}
