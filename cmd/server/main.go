package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"percytext.backend/internal/config"
	"percytext.backend/internal/infrastructure/crm"
	"percytext.backend/internal/infrastructure/registry"
	"percytext.backend/internal/infrastructure/repositories"
	"percytext.backend/internal/interfaces/http/handlers"
	"percytext.backend/internal/interfaces/http/middleware"
	"percytext.backend/internal/usecases"
	"percytext.backend/pkg/jwt"
	"percytext.backend/pkg/logger"
	"percytext.backend/pkg/redis"
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

	// Load configuration
	cfg := loadCfg()

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

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	leadActivityRepo := repositories.NewLeadActivityRepository(db)
	tcrRegistrationRepo := repositories.NewTCRRegistrationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize outbound clients. The registry environment is fixed for the
	// lifetime of the process so staging ids never mix with production.
	tcrClient := registry.NewTCRClient(cfg.TCR, cfg.Server.Env == "production")
	hubspotClient := crm.NewHubSpotClient(cfg.HubSpot)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, brandRepo, jwtService, sessionStore, cfg.Security.SessionExpiry)
	userUsecase := usecases.NewUserUsecase(userRepo)
	brandUsecase := usecases.NewBrandUsecase(brandRepo, tcrRegistrationRepo, tcrClient)
	campaignUsecase := usecases.NewCampaignUsecase(campaignRepo, brandRepo, tcrRegistrationRepo, tcrClient)
	leadUsecase := usecases.NewLeadUsecase(leadRepo, leadActivityRepo, uow, hubspotClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	brandHandler := handlers.NewBrandHandler(brandUsecase)
	campaignHandler := handlers.NewCampaignHandler(campaignUsecase)
	leadHandler := handlers.NewLeadHandler(leadUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Server.CORSOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:     authHandler,
		userHandler:     userHandler,
		brandHandler:    brandHandler,
		campaignHandler: campaignHandler,
		leadHandler:     leadHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 PercyText Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
