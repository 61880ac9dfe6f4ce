package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/skyfare/flight-booking-wizard/internal/app/config"
	"github.com/skyfare/flight-booking-wizard/internal/app/dto"
	"github.com/skyfare/flight-booking-wizard/internal/app/endpoints"
	"github.com/skyfare/flight-booking-wizard/internal/app/service"
	"github.com/skyfare/flight-booking-wizard/internal/app/transport"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/catalog"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/logger"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/random"
	"github.com/skyfare/flight-booking-wizard/internal/pkg/session"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts, limiter := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) (endpoints.Endpoints, *redis_rate.Limiter) {
	// init redis for the search throttle
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := redis_rate.NewLimiter(redisClient)

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// seedable random engine; seed 0 means time-derived
	rnd := random.NewSeeded(cfg.Catalog.Seed)

	bookingService := service.NewBookingService(
		session.NewManager(),
		catalog.NewGenerator(rnd),
		rnd,
		cfg.Payment.ProcessingDelay,
	)

	return endpoints.MakeEndpoints(bookingService), limiter
}
