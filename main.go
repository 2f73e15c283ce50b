package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"fct_backend/internals/configs"
	database "fct_backend/internals/databases"
	"fct_backend/internals/features/catalog/facade"
	helper "fct_backend/internals/helpers"
	middlewares "fct_backend/internals/middlewares"
	routes "fct_backend/internals/route"
)

func main() {
	cfg := configs.Load()

	// 🔌 DB connect + pool + warm-up
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	if err := database.TunePool(db, cfg); err != nil {
		log.Printf("pool tune err: %v", err)
	}
	database.WarmUp(db)

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Migrasi gagal: %v", err)
		}
	}

	svc, err := facade.New(db)
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi service: %v", err)
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON cepat; ConfigStd menjaga semantik encoding/json (null → UnmarshalJSON)
		JSONEncoder:             sonic.ConfigStd.Marshal,
		JSONDecoder:             sonic.ConfigStd.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, cfg)

	// ✅ Routes
	routes.SetupRoutes(app, db, svc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(db); err != nil {
		log.Printf("db close err: %v", err)
	}
	log.Println("👋 Server stopped")
}
