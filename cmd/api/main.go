package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chj1210/investigator/internal/api"
	"github.com/chj1210/investigator/internal/config"
	"github.com/chj1210/investigator/internal/db"
	"github.com/chj1210/investigator/internal/logger"
	"github.com/chj1210/investigator/internal/metrics"
	"github.com/chj1210/investigator/internal/repository/postgres"
	"github.com/chj1210/investigator/internal/services"
	"github.com/chj1210/investigator/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	caseSvc := services.NewCaseService(repos.Cases, repos.Transactions, repos.AuditLogs, wp)
	txnSvc := services.NewTransactionService(repos.Transactions, repos.Cases, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(cfg, caseSvc, txnSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
