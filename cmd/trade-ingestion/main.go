package main

import (
	"context"
	"flag"
	"log"
	"os"

	"tradebook/internal/db"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/repository"
	"tradebook/internal/service"
	"tradebook/internal/util"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

func main() {
	portfolioIDStr := flag.String("portfolio", "", "portfolio id to sync")
	newPortfolio := flag.String("new", "", "create a portfolio with this name and sync into it")
	fileName := flag.String("file", "transactions.csv", "transaction history export")
	flag.Parse()

	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(cfg.LogLevel)

	raw, err := os.ReadFile(*fileName)
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	positionsService := service.NewPositionsService(
		repository.NewPortfolioRepository(),
		repository.NewPositionsRepository(),
		cache.New(cfg.CacheTTL, service.CacheCleanupInterval),
		metrics.NewMetrics(nil),
	)

	file, err := positionsService.Parse(*fileName, raw)
	if err != nil {
		log.Fatal(err)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	var portfolioID uuid.UUID
	if *newPortfolio != "" {
		p, err := positionsService.CreatePortfolio(tx, *newPortfolio)
		if err != nil {
			log.Fatal(err)
		}
		portfolioID = p.PortfolioID
	} else {
		portfolioID, err = uuid.Parse(*portfolioIDStr)
		if err != nil {
			log.Fatalf("invalid portfolio id %q: %v", *portfolioIDStr, err)
		}
	}

	ctx := logger.WithContext(context.Background(), "portfolioID", portfolioID.String())
	positions, err := positionsService.SyncPortfolio(ctx, tx, portfolioID, file.Transactions)
	if err != nil {
		log.Fatal(err)
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	logger.L.Info("synced portfolio", "portfolioID", portfolioID.String(), "openPositions", len(positions))
}
