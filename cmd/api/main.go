package main

// @title Fuel Route Service API
// @version 1.0.0
// @description Сервис планирования маршрута с заправками по США. Строит автомобильный маршрут между двумя точками и подбирает остановки для дозаправки с минимальной суммарной стоимостью топлива для бака на 500 миль и расхода 10 миль на галлон.
// @description
// @description Основные возможности:
// @description - Планирование маршрута с оптимальными заправками (GET и POST /api/route/)
// @description - Список загруженных АЗС с фильтрами по штатам и цене
// @description - Агрегированная статистика по загруженным АЗС

// @contact.name API Support
// @contact.email support@fuel-route-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/fuel-route-service/docs"
	"github.com/fuel-route-service/internal/config"
	httpDelivery "github.com/fuel-route-service/internal/delivery/http"
	"github.com/fuel-route-service/internal/delivery/http/handler"
	"github.com/fuel-route-service/internal/infrastructure/nominatim"
	"github.com/fuel-route-service/internal/infrastructure/ors"
	"github.com/fuel-route-service/internal/pkg/logger"
	"github.com/fuel-route-service/internal/repository/cache"
	"github.com/fuel-route-service/internal/repository/postgres"
	"github.com/fuel-route-service/internal/repository/routecache"
	"github.com/fuel-route-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Fuel Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and upstream clients
	stationRepo := postgres.NewStationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)

	// Маршруты кешируются в памяти процесса поверх клиента ORS
	routeProvider := routecache.New(
		ors.NewClient(&cfg.Routing, log),
		cfg.Routing.CacheSize,
		log,
	)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	planUC := usecase.NewPlanUseCase(
		geocoder,
		routeProvider,
		stationRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	stationUC := usecase.NewStationUseCase(stationRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(planUC, log)
	stationHandler := handler.NewStationHandler(stationUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		stationHandler,
		healthHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
