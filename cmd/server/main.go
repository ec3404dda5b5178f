package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dispositionapp "github.com/Zxyilyy/cooked/internal/application/disposition"
	inventoryapp "github.com/Zxyilyy/cooked/internal/application/inventory"
	productionapp "github.com/Zxyilyy/cooked/internal/application/production"
	reportapp "github.com/Zxyilyy/cooked/internal/application/report"
	transferapp "github.com/Zxyilyy/cooked/internal/application/transfer"
	"github.com/Zxyilyy/cooked/internal/infrastructure/config"
	"github.com/Zxyilyy/cooked/internal/infrastructure/logger"
	"github.com/Zxyilyy/cooked/internal/infrastructure/persistence"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/handler"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/middleware"
	"github.com/Zxyilyy/cooked/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting baking ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully",
		zap.String("driver", cfg.Database.Driver))

	// Load the ledger state, seeding the opening inventory on first start
	docs := persistence.NewDocumentStore(db, log)
	store := persistence.NewStore(docs, &cfg.Ledger, log)
	if err := store.Load(context.Background()); err != nil {
		log.Fatal("Failed to load ledger state", zap.Error(err))
	}

	// Initialize application services
	inventoryService := inventoryapp.NewService(store, &cfg.Ledger, log)
	productionService := productionapp.NewService(store, log)
	dispositionService := dispositionapp.NewService(store, log)
	reportService := reportapp.NewService(store, log)
	transferService := transferapp.NewService(store, log)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.HTTP.AllowOrigins))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	// Register routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(cfg.App.Name, cfg.App.Env)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Register(handler.NewProductionHandler(productionService, reportService)).
		Register(handler.NewDispositionHandler(dispositionService)).
		Register(handler.NewReportHandler(reportService)).
		Register(handler.NewTransferHandler(transferService))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
