// Package main is the entry point for the airline ticket booking service.
//
//	@title						Airline Ticket Booking API
//	@version					1.0.0
//	@description				Flight search, ticket booking and reservation management with bearer token authentication.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/airline-booking/airline-ticket-booking/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
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

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/airline-booking/airline-ticket-booking/docs"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/auth"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/broker/rabbitmq"
	bookinghttp "github.com/airline-booking/airline-ticket-booking/internal/adapter/http"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/middleware"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/repository/memory"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/repository/postgres"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/repository/seed"
	"github.com/airline-booking/airline-ticket-booking/internal/config"
	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/logger"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/retry"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
)

// closer releases a backing service on shutdown.
type closer func()

func main() {
	cfg := config.MustLoad()

	log.Logger = logger.New(cfg.Logging)
	zerolog.DefaultContextLogger = &log.Logger

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Configuration loaded")

	ctx := logger.Into(context.Background(), log.Logger)
	var closers []closer

	repos, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	closers = append(closers, closeStorage)

	clock := timeutil.NewRealClock()
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)

	if cfg.Storage.Seed {
		if err := seed.Load(ctx, repos, hasher, clock); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	publisher, closeBroker := connectBroker(ctx, cfg.Broker)
	closers = append(closers, closeBroker)

	rdb, closeRedis := connectRedis(ctx, cfg.Redis)
	closers = append(closers, closeRedis)

	ucConfig := &usecase.Config{
		Clock:     clock,
		Publisher: publisher,
	}
	authUseCase := usecase.NewAuthUseCase(repos.Users, hasher, tokens, tokens)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	routeMiddleware := bookinghttp.RouteMiddleware{
		Auth: middleware.Auth(authUseCase),
	}
	if cfg.RateLimit.Enabled && rdb != nil {
		limiter := func(group string) echo.MiddlewareFunc {
			return middleware.RateLimit(rdb, middleware.RateLimitConfig{
				Capacity:    cfg.RateLimit.Capacity,
				RefillRate:  cfg.RateLimit.RefillRate,
				KeyStrategy: cfg.RateLimit.KeyStrategy,
				TTL:         cfg.RateLimit.TTL,
				Group:       group,
				Clock:       clock,
			})
		}
		routeMiddleware.LoginRateLimit = limiter("auth")
		routeMiddleware.ReservationRateLimit = limiter("reservations")
	}

	bookinghttp.RegisterRoutes(e, bookinghttp.Handlers{
		Auth:         bookinghttp.NewAuthHandler(authUseCase),
		Flights:      bookinghttp.NewFlightHandler(usecase.NewFlightSearchUseCase(repos.Flights, ucConfig)),
		Reservations: bookinghttp.NewReservationHandler(usecase.NewReservationUseCase(repos, ucConfig)),
	}, routeMiddleware)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg.Server, closers)
}

// openStorage returns the repositories for the configured driver.
func openStorage(ctx context.Context, cfg *config.Config) (domain.Repositories, closer, error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return memory.NewStore().Repositories(), func() {}, nil
	}

	pool, err := postgres.Connect(ctx, postgres.PoolOptions{
		URL:            cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		MinConns:       cfg.Database.MinConns,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		Retry:          withRetryLog(retry.ConnectConfig, "postgres"),
	})
	if err != nil {
		return domain.Repositories{}, nil, err
	}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return domain.Repositories{}, nil, err
		}
	}

	return postgres.NewStore(pool).Repositories(), pool.Close, nil
}

// connectBroker returns a RabbitMQ publisher, or a no-op publisher when the
// broker is not configured or unreachable. Events are best effort.
func connectBroker(ctx context.Context, cfg config.BrokerConfig) (domain.EventPublisher, closer) {
	if !cfg.Enabled() {
		log.Info().Msg("Broker not configured, reservation events are discarded")
		return domain.NopPublisher{}, func() {}
	}

	conn, err := rabbitmq.Dial(ctx, cfg.URL, withRetryLog(retry.ConnectConfig, "rabbitmq"))
	if err != nil {
		log.Error().Err(err).Msg("Broker unreachable, reservation events are discarded")
		return domain.NopPublisher{}, func() {}
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		log.Error().Err(err).Msg("Failed to open broker channel, reservation events are discarded")
		return domain.NopPublisher{}, func() {}
	}

	publisher, err := rabbitmq.NewPublisher(ch, cfg.Queue)
	if err != nil {
		_ = conn.Close()
		log.Error().Err(err).Msg("Failed to declare event queue, reservation events are discarded")
		return domain.NopPublisher{}, func() {}
	}

	log.Info().Str("queue", cfg.Queue).Msg("Publishing reservation events")
	return publisher, func() {
		_ = publisher.Close()
		_ = conn.Close()
	}
}

// connectRedis returns a client for the rate limiter, or nil when Redis is not
// configured or unreachable.
func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, closer) {
	if !cfg.Enabled() {
		log.Info().Msg("Redis not configured, rate limiting disabled")
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := retry.Do(ctx, func() error {
		return client.Ping(ctx).Err()
	}, withRetryLog(retry.ConnectConfig, "redis"))
	if err != nil {
		_ = client.Close()
		log.Error().Err(err).Msg("Redis unreachable, rate limiting disabled")
		return nil, func() {}
	}

	return client, func() { _ = client.Close() }
}

func withRetryLog(cfg retry.Config, component string) retry.Config {
	l := logger.Component(log.Logger, component)
	return cfg.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		l.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Connection attempt failed, retrying")
	})
}

// gracefulShutdown stops the server on SIGINT/SIGTERM, then releases backing
// services in reverse order.
func gracefulShutdown(e *echo.Echo, cfg config.ServerConfig, closers []closer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}

	log.Info().Msg("Server stopped")
}
