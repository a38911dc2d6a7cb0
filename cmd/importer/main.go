package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/config"
	"github.com/fuel-route-service/internal/importer"
	"github.com/fuel-route-service/internal/infrastructure/nominatim"
	"github.com/fuel-route-service/internal/pkg/logger"
	"github.com/fuel-route-service/internal/repository/postgres"
)

func main() {
	var (
		csvPath     = flag.String("csv", "fuel-prices-for-be-assessment.csv", "path to the OPIS price csv")
		concurrency = flag.Int("concurrency", 4, "number of geocoding workers")
		limit       = flag.Int("limit", 0, "max rows to import, 0 = all")
		dryRun      = flag.Bool("dry-run", false, "parse and geocode without writing to the database")
	)
	flag.Parse()

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

	log.Info("Starting station import",
		zap.String("csv", *csvPath),
		zap.Int("concurrency", *concurrency),
		zap.Int("limit", *limit),
		zap.Bool("dry_run", *dryRun))

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

	// 4. Initialize geocoder and repository
	geocoder := nominatim.NewClient(&cfg.Geocoder, log)
	stationRepo := postgres.NewStationRepository(db)

	im := importer.NewImporter(geocoder, stationRepo, *concurrency, 0, log)

	// 5. Cancel the import on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, stopping import")
		cancel()
	}()

	// 6. Run
	summary, err := im.Run(ctx, *csvPath, *limit, *dryRun)
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	if *dryRun {
		log.Info("Dry run complete, nothing written", zap.Int("would_save", summary.Saved))
	}
}
