package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/clock"
	"github.com/BOSTONE069/procurement-service/internal/db"
	"github.com/BOSTONE069/procurement-service/internal/handlers"
	"github.com/BOSTONE069/procurement-service/internal/middleware"
	"github.com/BOSTONE069/procurement-service/internal/repository"
	"github.com/BOSTONE069/procurement-service/internal/router"
	"github.com/BOSTONE069/procurement-service/internal/router/config"
	"github.com/BOSTONE069/procurement-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	var tenderRepo repository.TenderRepository
	var bidRepo repository.BidRepository
	if cfg.PostgresConn != "" {
		runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

		dbPool, err := db.InitDb(cfg)
		if err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		defer dbPool.Close()

		tenderRepo = repository.NewPostgresTenderRepository(dbPool)
		bidRepo = repository.NewPostgresBidRepository(dbPool)
	} else {
		logger.Println("POSTGRES_CONN is empty, using in-memory storage")
		tenderRepo = repository.NewInMemoryTenderRepository()
		bidRepo = repository.NewInMemoryBidRepository()
	}

	events := repository.NewEventLog()

	tenderService := services.NewTenderService(tenderRepo, events)
	bidService := services.NewBidService(tenderRepo, bidRepo)
	awardService := services.NewAwardService(tenderRepo, bidRepo, events)

	clk := clock.NewSystem()
	tenderHandler := handlers.NewTenderHandler(tenderService, logger, 5*time.Second, clk)
	bidHandler := handlers.NewBidHandler(bidService, logger, 5*time.Second, clk)
	awardHandler := handlers.NewAwardHandler(awardService, logger, 5*time.Second, clk)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
	metrics := middleware.NewMetrics()

	routes := router.InitRoutes(tenderHandler, bidHandler, awardHandler, limiter, metrics)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
