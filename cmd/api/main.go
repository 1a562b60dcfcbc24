package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-pos-ledger/internal/config"
	"go-pos-ledger/internal/handler"
	"go-pos-ledger/internal/logger"
	"go-pos-ledger/internal/middleware"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"
	"go-pos-ledger/internal/ws"
	"go-pos-ledger/pkg/password"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load config
	cfg, envLoaded, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)
	if !envLoaded {
		log.Warn(".env file not found, relying on system env")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Setup store
	store := repository.NewStore()
	if cfg.SeedDemoData {
		store.SeedDefaults()
		log.Info("demo data seeded")
	}

	// 3. Setup WebSocket hub
	var (
		wsHub     *ws.Hub
		publisher service.Publisher
	)
	if cfg.EnableWebSocket {
		wsHub = ws.NewHub(log)
		go wsHub.Run(ctx)
		publisher = wsHub
	}

	hasher, err := password.New(cfg.PasswordHasher)
	if err != nil {
		log.Fatalf("password hasher: %v", err)
	}

	// 4. Dependency injection
	loanService := service.NewLoanService(store.Loans, publisher, log)
	paymentService := service.NewPaymentService(store.Payments, publisher, log)
	saleService := service.NewSaleService(store.Sales, store.Products, publisher, log)
	userService := service.NewUserService(store.Users, hasher, publisher, log)
	reportService := service.NewReportService(store)

	handlers := handler.Handlers{
		Loan:    handler.NewLoanHandler(loanService, log),
		Payment: handler.NewPaymentHandler(paymentService, log),
		Sale:    handler.NewSaleHandler(saleService, log),
		User:    handler.NewUserHandler(userService, log),
		Report:  handler.NewReportHandler(reportService, log),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handler.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	// 6. Routes
	handler.RegisterRoutes(app.Group("/api"), handlers)

	if wsHub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(wsHub.Serve))
	}

	// 7. Graceful shutdown
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "websocket": cfg.EnableWebSocket}).Info("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Info("server exited")
}
