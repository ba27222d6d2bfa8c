package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/warung-order/application/admin"
	cartapp "github.com/muhammadheryan/warung-order/application/cart"
	checkoutapp "github.com/muhammadheryan/warung-order/application/checkout"
	mediaapp "github.com/muhammadheryan/warung-order/application/media"
	orderapp "github.com/muhammadheryan/warung-order/application/order"
	productapp "github.com/muhammadheryan/warung-order/application/product"
	settingapp "github.com/muhammadheryan/warung-order/application/setting"
	"github.com/muhammadheryan/warung-order/cmd/config"
	redisclient "github.com/muhammadheryan/warung-order/cmd/redis"
	_ "github.com/muhammadheryan/warung-order/docs"
	"github.com/muhammadheryan/warung-order/repository/migration"
	orderRepo "github.com/muhammadheryan/warung-order/repository/order"
	productRepo "github.com/muhammadheryan/warung-order/repository/product"
	redisRepo "github.com/muhammadheryan/warung-order/repository/redis"
	settingRepo "github.com/muhammadheryan/warung-order/repository/setting"
	txRepo "github.com/muhammadheryan/warung-order/repository/tx"
	"github.com/muhammadheryan/warung-order/thirdparty/minio"
	"github.com/muhammadheryan/warung-order/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warung-order/transport"
	"github.com/muhammadheryan/warung-order/utils/logger"
	validatorx "github.com/muhammadheryan/warung-order/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title WARUNG ORDER API
// @version 1.0
// @description Storefront cart, WhatsApp checkout and admin API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "warung-order"); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	// money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := migration.Up(db.DB, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Order events are best effort; checkout keeps working without a broker
	var publisher checkoutapp.EventPublisher
	rabbitPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
	} else {
		publisher = rabbitPublisher
		defer rabbitPublisher.Close()
	}

	var storage mediaapp.ObjectStorage
	if cfg.Minio.AccessKey != "" {
		minioStorage, err := minio.NewStorage(context.Background(), cfg.Minio)
		if err != nil {
			logger.Warn("minio unavailable, image upload disabled", zap.Error(err))
		} else {
			storage = minioStorage
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	SettingRepo := settingRepo.NewSettingRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, TxRepo, OrderRepo, SettingRepo, publisher)
	httpTransport := transport.NewTransport(&transport.RestHandler{
		CartApp:     cartapp.NewCartApp(cfg, RedisRepo, ProductRepo, CheckoutApp),
		CheckoutApp: CheckoutApp,
		ProductApp:  productapp.NewProductApp(ProductRepo),
		SettingApp:  settingapp.NewSettingApp(SettingRepo),
		OrderApp:    orderapp.NewOrderApp(OrderRepo),
		AdminApp:    adminapp.NewAdminApp(cfg, RedisRepo),
		MediaApp:    mediaapp.NewMediaApp(cfg, storage),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
