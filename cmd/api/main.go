package main

import (
	"log"

	"tradebook/api"
	"tradebook/internal/db"
	"tradebook/internal/logger"
	"tradebook/internal/metrics"
	"tradebook/internal/repository"
	"tradebook/internal/resolver"
	"tradebook/internal/service"
	"tradebook/internal/util"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(cfg.LogLevel)

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	portfolioRepository := repository.NewPortfolioRepository()
	positionsRepository := repository.NewPositionsRepository()

	positionsService := service.NewPositionsService(
		portfolioRepository,
		positionsRepository,
		cache.New(cfg.CacheTTL, service.CacheCleanupInterval),
		m,
	)

	r := resolver.NewResolver(
		dbConn,
		positionsService,
	)

	logger.L.Info("starting api", "port", cfg.Port)
	err = api.StartApi(cfg.Port, r, m)
	if err != nil {
		log.Fatal(err)
	}
}
