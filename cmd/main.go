package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	categoryapp "github.com/rizkyfachril/backoffice/application/category"
	dashboardapp "github.com/rizkyfachril/backoffice/application/dashboard"
	inventoryapp "github.com/rizkyfachril/backoffice/application/inventory"
	productapp "github.com/rizkyfachril/backoffice/application/product"
	shippingapp "github.com/rizkyfachril/backoffice/application/shipping"
	userapp "github.com/rizkyfachril/backoffice/application/user"
	"github.com/rizkyfachril/backoffice/cmd/config"
	redisclient "github.com/rizkyfachril/backoffice/cmd/redis"
	_ "github.com/rizkyfachril/backoffice/docs"
	categoryRepo "github.com/rizkyfachril/backoffice/repository/category"
	inventoryRepo "github.com/rizkyfachril/backoffice/repository/inventory"
	productRepo "github.com/rizkyfachril/backoffice/repository/product"
	redisRepo "github.com/rizkyfachril/backoffice/repository/redis"
	shippingRepo "github.com/rizkyfachril/backoffice/repository/shipping"
	txRepo "github.com/rizkyfachril/backoffice/repository/tx"
	userRepo "github.com/rizkyfachril/backoffice/repository/user"
	"github.com/rizkyfachril/backoffice/thirdparty/rabbitmq"
	"github.com/rizkyfachril/backoffice/transport"
	"github.com/rizkyfachril/backoffice/utils/logger"
	"go.uber.org/zap"
)

// @title BACK OFFICE API
// @version 1.0
// @description E-commerce back-office API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ for low-stock alerts; the ledger degrades to
	// logging-only when the broker is unavailable.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, low-stock alerts disabled", zap.Error(err))
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Start the low-stock alert forwarder when a webhook is configured
	if publisher != nil && cfg.RabbitMQ.AlertWebhookURL != "" {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.AlertWebhookURL)
		if err != nil {
			logger.Warn("err connect rabbitmq consumer", zap.Error(err))
		} else {
			defer func() {
				_ = consumer.Close()
			}()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("err start low-stock consumer", zap.Error(err))
			}
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	ShippingRepo := shippingRepo.NewShippingRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	CategoryApp := categoryapp.NewCategoryApp(CategoryRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	ShippingApp := shippingapp.NewShippingApp(ShippingRepo)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, publisher)
	DashboardApp := dashboardapp.NewDashboardApp(ProductRepo, CategoryRepo, UserRepo, InventoryRepo, RedisRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:       cfg,
		UserApp:      UserApp,
		CategoryApp:  CategoryApp,
		ProductApp:   ProductApp,
		ShippingApp:  ShippingApp,
		InventoryApp: InventoryApp,
		DashboardApp: DashboardApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
