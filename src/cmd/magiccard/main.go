package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/magic-card/src/internal/adapter/repository/memory"
	"github.com/api-sage/magic-card/src/internal/config"
	"github.com/api-sage/magic-card/src/internal/logger"
	"github.com/api-sage/magic-card/src/internal/metrics"
	"github.com/api-sage/magic-card/src/internal/simulation"
	"github.com/api-sage/magic-card/src/internal/usecase/services"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl := logger.Init(cfg.LogLevel)
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One registry for the whole process; every caller goes through it.
	registry := memory.NewAccountRegistry()
	cardService := services.NewCardService(registry, metrics.NewCollector(prometheus.DefaultRegisterer))

	result, err := simulation.Run(ctx, cardService, simulation.Params{
		AccountNumber:  cfg.SimAccountNumber,
		OpeningBalance: cfg.SimOpeningBalance,
		Pin:            cfg.SimPin,
		Withdrawals:    cfg.SimWithdrawals,
	})
	if err != nil {
		logger.Error("simulation failed", err, logger.Fields{"runId": result.RunID})
		_ = zl.Sync()
		os.Exit(1)
	}

	logger.Info("simulation reconciled", logger.Fields{
		"runId":        result.RunID,
		"finalBalance": result.FinalBalance,
	})

	logOperationCounts(result.RunID, prometheus.DefaultGatherer)
}

func logOperationCounts(runID string, g prometheus.Gatherer) {
	samples, err := metrics.Snapshot(g)
	if err != nil {
		logger.Error("gather operation metrics failed", err, logger.Fields{"runId": runID})
		return
	}

	for _, sample := range samples {
		logger.Info("card operations", logger.Fields{
			"runId":     runID,
			"operation": sample.Operation,
			"outcome":   sample.Outcome,
			"count":     sample.Count,
		})
	}
}
