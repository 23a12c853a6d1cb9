package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"renthub/internal/caching"
	"renthub/internal/handlers"
	"renthub/internal/jobs"
	"renthub/internal/middleware"
	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services"
	"renthub/pkg/database"
)

const version = "1.0.0"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	minioBucket := os.Getenv("MINIO_BUCKET")
	if minioBucket == "" {
		minioBucket = "renthub-photos"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	photoSvc, err := services.NewPhotoService(minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize photo service: %v", err)
	}
	if err := photoSvc.EnsureBucketExists(context.Background()); err != nil {
		logger.Warn("photo bucket check failed", zap.Error(err))
	}

	// Create repositories
	userRepo := repositories.NewUserRepository(pool)
	subscriptionRepo := repositories.NewSubscriptionRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	unitTenantRepo := repositories.NewUnitTenantRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)
	auditLogRepo := repositories.NewAuditLogsRepository(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	auditLogger := services.NewAuditLogger(auditLogRepo, logger)
	auditQuerySvc := services.NewAuditQueryService(auditLogRepo)
	subscriptionSvc := services.NewSubscriptionService(subscriptionRepo, cacheSvc, auditLogger, logger)
	authSvc := services.NewAuthService(userRepo, subscriptionSvc, jwtSecret, 24*time.Hour)
	invitationSvc := services.NewInvitationService(unitRepo, unitTenantRepo, auditLogger)
	reconcilerSvc := services.NewReconcilerService(paymentRepo, unitTenantRepo, unitRepo, auditLogger, logger)
	maintenanceSvc := services.NewMaintenanceService(maintenanceRepo, unitTenantRepo, auditLogger)

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	invitationHandlers := handlers.NewInvitationHandlers(invitationSvc)
	adminHandlers := handlers.NewAdminHandlers(reconcilerSvc)
	maintenanceHandlers := handlers.NewMaintenanceHandlers(maintenanceSvc, photoSvc)
	membershipHandlers := handlers.NewMembershipHandlers(subscriptionSvc)
	auditLogsHandlers := handlers.NewAuditLogsHandlers(auditQuerySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Trial-expiry sweep
	sweeper, err := jobs.NewTrialSweeper(subscriptionSvc, services.NewLogNotifier(logger), logger)
	if err != nil {
		log.Fatalf("Failed to create trial sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	v1 := e.Group("/v1")

	// Authentication routes (no JWT required for signup/login)
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandlers.Signup)
	auth.POST("/login", authHandlers.Login)

	// Public invitation resolution: the claimant has no account yet.
	v1.GET("/invite/:token", invitationHandlers.Resolve)

	// Protected routes
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(jwtSecret)))

	protected.GET("/auth/me", authHandlers.Me)

	protected.POST("/invite/:token/claim", invitationHandlers.Claim,
		middleware.RequireRole(models.RoleTenant))
	protected.POST("/units/:id/invite", invitationHandlers.Regenerate,
		middleware.RequireRole(models.RoleLandlord))
	protected.GET("/units/assignments", invitationHandlers.Assignments,
		middleware.RequireRole(models.RoleTenant))

	protected.POST("/admin/reconcile", adminHandlers.Reconcile,
		middleware.RequireRole(models.RoleSuperAdmin))

	protected.POST("/maintenance", maintenanceHandlers.Create,
		middleware.RequireRole(models.RoleTenant))
	protected.GET("/maintenance", maintenanceHandlers.List,
		middleware.RequireRole(models.RoleTenant, models.RoleLandlord))
	protected.PUT("/maintenance/:id/status", maintenanceHandlers.UpdateStatus,
		middleware.RequireRole(models.RoleLandlord))
	protected.POST("/maintenance/photos", maintenanceHandlers.UploadPhoto,
		middleware.RequireRole(models.RoleTenant, models.RoleLandlord))

	protected.GET("/membership", membershipHandlers.GetStatus,
		middleware.RequireRole(models.RoleLandlord))
	protected.POST("/membership/pay", membershipHandlers.RecordPayment,
		middleware.RequireRole(models.RoleLandlord))

	protected.GET("/audit-logs", auditLogsHandlers.List,
		middleware.RequireRole(models.RoleLandlord, models.RoleSuperAdmin))

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	logger.Info("renthub server starting", zap.String("version", version), zap.Int("port", port))
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
