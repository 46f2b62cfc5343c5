package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/internal/config"
	"orderdesk/internal/infra"
	"orderdesk/internal/repository"
	"orderdesk/internal/router"
	"orderdesk/internal/service"
	"orderdesk/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Background reconciliation: a sweep cron enqueues one job per order,
	// the worker pool recomputes totals. Repairs drift from out-of-band
	// writes; the HTTP write path reconciles synchronously on its own.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	itemRepo := repository.NewOrderInfoRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	totalSvc := service.NewOrderTotalService(itemRepo, orderRepo)

	dispatcher := worker.NewDispatcher(rdb)
	workerHandlers := &worker.WorkerHandlers{
		Reconcile: worker.NewReconcileWorker(totalSvc),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
	worker.StartSweepCron(ctx, worker.SweepCronConfig{
		Orders:     orderRepo,
		Dispatcher: dispatcher,
		Interval:   time.Duration(cfg.SweepIntervalMin) * time.Minute,
	})

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("orderdesk listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
