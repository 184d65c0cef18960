package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/liutentor/tentor-backend/internal/api"
	chatapi "github.com/liutentor/tentor-backend/internal/api/chat"
	examapi "github.com/liutentor/tentor-backend/internal/api/exam"
	healthapi "github.com/liutentor/tentor-backend/internal/api/health"
	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/integration/openai"
	"github.com/liutentor/tentor-backend/internal/integration/storage"
	"github.com/liutentor/tentor-backend/internal/pkg/validator"
	"github.com/liutentor/tentor-backend/internal/repository"
	"github.com/liutentor/tentor-backend/internal/usecase/chat"
	"github.com/liutentor/tentor-backend/internal/usecase/exam"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.Int("server_port", cfg.ServerPort),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	examRepo := repository.NewExamPostgres(db)
	solutionRepo := repository.NewSolutionPostgres(db)
	statsRepo := repository.NewStatsPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var docFetcher chat.DocumentFetcher
	var modelConnector chat.ModelConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		docFetcher = storage.NewMockFetcher(logger)
		modelConnector = openai.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		docFetcher = storage.NewFetcher(cfg.StorageCfg, logger)
		modelConnector = openai.NewConnector(cfg.OpenAICfg, logger)
	}

	// Initialize validators
	requestValidator := validator.NewValidator(cfg.ChatCfg)
	logger.Info("Validators initialized")

	// Initialize use cases
	examUC := exam.NewUsecase(examRepo, solutionRepo, statsRepo, logger)
	chatUC := chat.NewUsecase(
		examRepo,
		solutionRepo,
		docFetcher,
		modelConnector,
		cfg.ChatCfg,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	examHandler := examapi.NewHandler(examUC, requestValidator)
	chatHandler := chatapi.NewHandler(chatUC, requestValidator)
	healthHandler := healthapi.NewHandler(examUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(cfg, examHandler, chatHandler, healthHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. WriteTimeout stays zero: completions stream
	// for up to the chat deadline, which the route middleware enforces.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
