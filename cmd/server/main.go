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

	"github.com/Tharak23/deep-fake/internal/config"
	"github.com/Tharak23/deep-fake/internal/infrastructure/repositories"
	"github.com/Tharak23/deep-fake/internal/infrastructure/storage"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/handlers"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/Tharak23/deep-fake/internal/usecases"
	"github.com/Tharak23/deep-fake/pkg/jwt"
	"github.com/Tharak23/deep-fake/pkg/logger"
	"github.com/Tharak23/deep-fake/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	newLocalStorage = storage.NewLocalStorage
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

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

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
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	localStore, err := newLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewVerificationRequestRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	adminPolicy := usecases.NewAdminPolicy(cfg.Admin.Emails, userRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, userRepo, adminPolicy, uow)
	storageUsecase := usecases.NewStorageUsecase(fileRepo, contributionRepo, localStore, cfg.Storage.PublicBaseURL)
	blogUsecase := usecases.NewBlogUsecase(blogRepo, userRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, adminPolicy)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	adminHandler := handlers.NewAdminHandler(verificationUsecase)
	storageHandler := handlers.NewStorageHandler(storageUsecase, cfg.Storage.MaxUploadSize)
	blogHandler := handlers.NewBlogHandler(blogUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	healthHandler := handlers.NewHealthHandler(db)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoutes(r, healthHandler)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		verificationHandler: verificationHandler,
		adminHandler:        adminHandler,
		storageHandler:      storageHandler,
		blogHandler:         blogHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
	})

	log.Printf("Research platform backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
