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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pharmadesk/m/internal/api"
	"pharmadesk/m/internal/config"
	"pharmadesk/m/internal/engine"
	"pharmadesk/m/internal/notify"
	"pharmadesk/m/internal/seed"
	"pharmadesk/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.Env)

	catalog := store.NewCatalog()
	ledger := store.NewLedger(catalog)
	bus := notify.NewBus()
	eng := engine.New(catalog, ledger, bus, logger)

	events := make(chan notify.Event, 32)
	bus.Subscribe(notify.MedicineCreated, events)
	bus.Subscribe(notify.MedicineUpdated, events)
	bus.Subscribe(notify.StockRecorded, events)
	go func() {
		for ev := range events {
			logger.Info().
				Str("event_id", ev.ID.String()).
				Str("event", string(ev.Name)).
				Msg("core notification")
		}
	}()

	if _, err := seed.LoadMedicines(catalog, cfg.SeedFile, logger); err != nil {
		logger.Warn().Err(err).Msg("starting with an empty catalog")
	}

	handler := api.New(catalog, ledger, eng, bus, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.Router(),
	}

	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(func() error {
		logger.Info().Str("port", cfg.HTTPPort).Msg("pharmacy inventory server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	errGrp.Go(func() error {
		<-shutdownCtx.Done()
		logger.Info().Msg("server is gracefully shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server failed to shut down gracefully: %w", err)
		}
		return nil
	})

	if err := errGrp.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("all pending requests completed")
}

func newLogger(env string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}
