package main

import (
	"context"
	"log"
	"net/http"

	webAdapter "gst-invoicing/internal/adapters/web"
	"gst-invoicing/internal/app"
	"gst-invoicing/internal/config"
	"gst-invoicing/internal/core"
	"gst-invoicing/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	productService := core.NewProductService(pool)
	invoiceService := core.NewInvoiceService(pool)
	reportingService := core.NewReportingService(pool)
	userService := core.NewUserService(pool)

	svc := app.NewAppService(productService, invoiceService, reportingService, userService)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins, cfg.JWTSecret)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
