package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizadmin/internal/admin/cache"
	"bizadmin/internal/admin/config"
	"bizadmin/internal/admin/handler"
	"bizadmin/internal/admin/metrics"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/router"
	"bizadmin/internal/admin/service"
	"bizadmin/internal/admin/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 1. Init Logger
	util.InitLoggerWithLevel(cfg.LogLevel)
	logger := util.GetLogger()

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetRegistry(repository.NewRegistry()))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	store := repository.NewMongoStore(db, cfg.Collections)

	// Ensure Indexes
	if err := repository.EnsureIndexes(ctx, db, cfg.Collections); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}
	if err := store.UserRoles.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure user role indexes", "error", err)
	}
	if err := store.Activity.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure activity indexes", "error", err)
	}

	var dashboardCache cache.Cache = cache.Noop{}
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable, dashboards are computed on every request", "addr", cfg.RedisAddr, "error", err)
		}
		dashboardCache = cache.NewRedis(rdb, cfg.DBName+":")
	}

	m := metrics.New()
	svc := service.NewService(store, service.Options{
		Cache:          dashboardCache,
		Metrics:        m,
		CacheTTL:       cfg.DashboardCacheTTL,
		UpcomingWindow: time.Duration(cfg.UpcomingMilestoneDays) * 24 * time.Hour,
	})
	if err := svc.BootstrapAdmin(ctx, cfg.BootstrapAdminID); err != nil {
		logger.Error("Failed to bootstrap admin", "error", err)
		os.Exit(1)
	}
	h := handler.NewHandler(svc)

	// 4. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, svc.Policy, store.UserRoles, m)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("Failed to close redis", "error", err)
		}
	}

	// Disconnect DB
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
