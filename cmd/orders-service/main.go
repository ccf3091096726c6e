package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurpe/orders-service/internal/config"
	"github.com/nurpe/orders-service/internal/db"
	"github.com/nurpe/orders-service/internal/excel"
	httphandler "github.com/nurpe/orders-service/internal/http"
	"github.com/nurpe/orders-service/internal/http/middleware"
	"github.com/nurpe/orders-service/internal/logger"
	"github.com/nurpe/orders-service/internal/pdf"
	"github.com/nurpe/orders-service/internal/repository"
	"github.com/nurpe/orders-service/internal/seed"
	"github.com/nurpe/orders-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	store := repository.NewStore(database)

	if cfg.Seed.Enabled {
		if _, err := seed.NewLoader(store, cfg.Seed.Dir, log).Load(ctx); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Seed.Dir).Msg("failed to seed database")
		}
	}

	handler := httphandler.NewHandler(httphandler.Services{
		Users:   service.NewUserService(store),
		Orders:  service.NewOrderService(store),
		Offers:  service.NewOfferService(store),
		Reports: service.NewReportService(store, excel.NewGenerator(), pdf.NewGenerator()),
	}, store, log)
	router := httphandler.NewRouter(handler, cfg, log, middleware.NewMetrics())

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting orders service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
			return
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
