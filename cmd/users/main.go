package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/jumbaa/internal/pkg/config"
	"github.com/piresc/jumbaa/internal/pkg/database"
	"github.com/piresc/jumbaa/internal/pkg/health"
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/middleware"
	nsqpkg "github.com/piresc/jumbaa/internal/pkg/nsq"
	"github.com/piresc/jumbaa/internal/pkg/retry"
	"github.com/piresc/jumbaa/internal/pkg/server"
	"github.com/piresc/jumbaa/services/users/gateway"
	"github.com/piresc/jumbaa/services/users/handler"
	httpHandler "github.com/piresc/jumbaa/services/users/handler/http"
	"github.com/piresc/jumbaa/services/users/repository"
	"github.com/piresc/jumbaa/services/users/usecase"
)

func main() {
	appName := "users-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/users.env")
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	ctx := context.Background()
	retrier := retry.New(retry.StartupConfig(), appLogger)

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	if err := retrier.Execute(ctx, "connect postgres", func(context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	if err := retrier.Execute(ctx, "connect redis", func(context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	}); err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}

	// Initialize NSQ producer
	var producer *nsqpkg.Producer
	if err := retrier.Execute(ctx, "connect nsqd", func(context.Context) error {
		producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		return err
	}); err != nil {
		appLogger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
	}

	// Initialize repository
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	if configs.Database.AutoMigrate {
		if err := userRepo.InitSchema(ctx); err != nil {
			appLogger.Fatal("Failed to initialize schema", logger.ErrorField(err))
		}
	}

	// Initialize Gateway
	userGW := gateway.NewUserGW(producer)

	// Initialize UseCase
	revocations := jwtpkg.NewRevocationStore(redisClient)
	userUC := usecase.NewUserUC(userRepo, userGW, revocations, configs)

	// Handlers for HTTP
	userHandler := httpHandler.NewUserHandler(userUC)
	authHandler := httpHandler.NewAuthHandler(userUC)
	h := handler.NewHandler(userHandler, authHandler, revocations, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	health.RegisterHealthEndpoints(e, appName, healthService)

	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error {
		producer.Stop()
		return nil
	})

	if err := srv.Start(); err != nil {
		appLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.ErrorField(err))
	}
}
