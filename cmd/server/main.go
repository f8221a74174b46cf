package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blood-link.backend/internal/config"
	"blood-link.backend/internal/infrastructure/datasources"
	"blood-link.backend/internal/infrastructure/eligibility"
	"blood-link.backend/internal/infrastructure/notification"
	"blood-link.backend/internal/infrastructure/repositories"
	"blood-link.backend/internal/infrastructure/storage"
	"blood-link.backend/internal/interfaces/http/handlers"
	"blood-link.backend/internal/interfaces/http/middleware"
	"blood-link.backend/internal/usecases"
	"blood-link.backend/pkg/jwt"
	"blood-link.backend/pkg/logger"
	"blood-link.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
	}
	newSessionStore = redis.NewSessionStore
	seedHospitals   = datasources.SeedHospitals
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load and validate configuration before anything touches the network
	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM. TranslateError lets the repositories
	// map unique-constraint violations to domain errors.
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}
	logger.Info(context.Background(), "Connected to PostgreSQL")

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	hospitalRepo := repositories.NewHospitalRepository(db)
	sosRepo := repositories.NewSOSRequestRepository(db)

	// Seed the hospital registry
	if err := seedHospitals(context.Background(), hospitalRepo); err != nil {
		return fmt.Errorf("failed to seed hospitals: %w", err)
	}

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Report store: Minio when configured, local filesystem otherwise
	var reportStore storage.ReportStore
	if cfg.Storage.MinioEndpoint != "" {
		reportStore, err = storage.NewMinioStore(
			cfg.Storage.MinioEndpoint,
			cfg.Storage.MinioAccessKey,
			cfg.Storage.MinioSecretKey,
			cfg.Storage.MinioBucket,
			cfg.Storage.MinioUseSSL,
		)
	} else {
		reportStore, err = storage.NewLocalStore(cfg.Storage.LocalDir)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize report store: %w", err)
	}

	// Eligibility gate and SMS dispatch
	classifier := eligibility.NewOpenAIClassifier(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
	extractor := eligibility.NewPlainTextExtractor()
	dispatcher := notification.NewTwilioDispatcher(
		cfg.SMS.AccountSID,
		cfg.SMS.AuthToken,
		cfg.SMS.FromNumber,
		cfg.SMS.BaseURL,
	)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	reportUsecase := usecases.NewReportUsecase(userRepo, extractor, classifier, reportStore)
	sosUsecase := usecases.NewSOSUsecase(sosRepo, userRepo, hospitalRepo, dispatcher, cfg.SMS.AlertRecipient, cfg.Server.PublicBaseURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, reportUsecase, sessionStore, cfg.Session.TTL)
	sosHandler := handlers.NewSOSHandler(sosUsecase)
	reportHandler := handlers.NewReportHandler(reportUsecase)

	sessionAuth := middleware.SessionAuthMiddleware(sessionStore, jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r, sqlDB)
	registerRoutes(r, routeDeps{
		authHandler:   authHandler,
		sosHandler:    sosHandler,
		reportHandler: reportHandler,
		sessionAuth:   sessionAuth,
	})

	logger.Info(context.Background(), "Server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("public_base_url", cfg.Server.PublicBaseURL),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
