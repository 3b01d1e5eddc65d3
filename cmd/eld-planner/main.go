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

	"github.com/nurpe/eld-planner/internal/config"
	"github.com/nurpe/eld-planner/internal/db"
	"github.com/nurpe/eld-planner/internal/events"
	"github.com/nurpe/eld-planner/internal/excel"
	"github.com/nurpe/eld-planner/internal/geocode"
	httphandler "github.com/nurpe/eld-planner/internal/http"
	"github.com/nurpe/eld-planner/internal/logger"
	"github.com/nurpe/eld-planner/internal/pdf"
	"github.com/nurpe/eld-planner/internal/repository"
	"github.com/nurpe/eld-planner/internal/service"
)

type publisher interface {
	service.EventPublisher
	Close() error
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	var pub publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		pub = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publishing trip events")
	}
	defer pub.Close()

	tripRepo := repository.NewTripRepository(database)
	tripService := service.NewTripService(
		tripRepo,
		geocode.NewStaticResolver(),
		pub,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
		log,
	)

	handler := httphandler.NewHandler(tripService, log)
	router := httphandler.NewRouter(handler, httphandler.RouterConfig{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", addr).Msg("starting eld planner")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("eld planner stopped")
}
