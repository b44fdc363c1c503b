// Command server runs the supplyhub REST API.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authpostgres "supplyhub/internal/auth/adapters/postgres"
	authservices "supplyhub/internal/auth/adapters/services"
	authapp "supplyhub/internal/auth/app"
	catalogcountries "supplyhub/internal/catalog/adapters/countries"
	catalogpostgres "supplyhub/internal/catalog/adapters/postgres"
	catalogapp "supplyhub/internal/catalog/app"
	"supplyhub/internal/config"
	httpserver "supplyhub/internal/server/http"
	"supplyhub/pkg/db/postgres"
	"supplyhub/pkg/db/redis"
	"supplyhub/pkg/logger"
	"supplyhub/pkg/shutdown"
)

// Environment variables consulted before the config is loaded.
const (
	EnvLoggerMode  = "SUPPLYHUB_LOGGER_MODE"
	EnvLoggerLevel = "SUPPLYHUB_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrConnectRedis         = "country cache unavailable, proceeding without it"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Ignorable logger sync errors on standard streams.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "supplyhub service started"
	LogServiceShutdownDone = "supplyhub service shutdown complete"
	LogApplyingMigrations  = "applying database migrations"
	LogInitCache           = "initializing country cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database pool"
	LogClosingRedis        = "closing Redis connection"
)

const migrationsPath = "file://migrations"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		// Load refuses to proceed without a signing secret; that is a
		// startup failure, never a per-request one.
		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogApplyingMigrations)
		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		redisClient, err := redis.New(ctx, redis.Options{
			Addr:         cfg.Redis.GetAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.ConnectTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			// The cache only memoizes country lookups; losing it
			// degrades latency, not correctness.
			log.Warn(ctx, ErrConnectRedis, zap.Error(err))
			redisClient = nil
		}

		log.Info(ctx, LogInitServices)
		userRepo := authpostgres.NewUserRepository(database.Pool())
		passwordSvc := authservices.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := authservices.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL(), cfg.JWT.GetRefreshTokenTTL())
		authUseCase := authapp.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

		providerRepo := catalogpostgres.NewProviderRepository(database.Pool())
		productRepo := catalogpostgres.NewProductRepository(database.Pool())
		countryVerifier := catalogcountries.NewClient(nil, redisClient, "", cfg.Redis.DefaultTTL)
		providerUseCase := catalogapp.NewProviderUseCase(providerRepo, countryVerifier)
		productUseCase := catalogapp.NewProductUseCase(productRepo, providerRepo)

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpserver.SetupRouter(app, httpserver.Deps{
			AuthUseCase:     authUseCase,
			TokenService:    tokenSvc,
			UserRepository:  userRepo,
			ProviderUseCase: providerUseCase,
			ProductUseCase:  productUseCase,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.Shutdown() //nolint:wrapcheck
			},
			func(ctx context.Context) error {
				if redisClient != nil {
					log.Info(ctx, LogClosingRedis)
					return redisClient.Close() //nolint:wrapcheck
				}
				return nil
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
