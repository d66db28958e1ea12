package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/config"
	"github.com/superblog/auth/internal/pkg/database"
	"github.com/superblog/auth/internal/pkg/health"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/middleware"
	"github.com/superblog/auth/internal/pkg/models"
	natspkg "github.com/superblog/auth/internal/pkg/nats"
	nrpkg "github.com/superblog/auth/internal/pkg/newrelic"
	"github.com/superblog/auth/internal/pkg/server"
	accessGateway "github.com/superblog/auth/services/access/gateway"
	accessHandler "github.com/superblog/auth/services/access/handler/http"
	accessRepository "github.com/superblog/auth/services/access/repository"
	accessUsecase "github.com/superblog/auth/services/access/usecase"
	adminGateway "github.com/superblog/auth/services/admin/gateway"
	adminHandler "github.com/superblog/auth/services/admin/handler/http"
	adminRepository "github.com/superblog/auth/services/admin/repository"
	adminUsecase "github.com/superblog/auth/services/admin/usecase"
	authGateway "github.com/superblog/auth/services/auth/gateway"
	authHandler "github.com/superblog/auth/services/auth/handler/http"
	authRepository "github.com/superblog/auth/services/auth/repository"
	authUsecase "github.com/superblog/auth/services/auth/usecase"
	oauthHandler "github.com/superblog/auth/services/oauth/handler/http"
	oauthRepository "github.com/superblog/auth/services/oauth/repository"
	oauthUsecase "github.com/superblog/auth/services/oauth/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	stateRepo := oauthRepository.NewStateRepo(redisClient)
	adminRepo := adminRepository.NewAdminRepo(configs, postgresClient.GetDB(), redisClient)
	accessRepo := accessRepository.NewAccessRepo(postgresClient.GetDB())

	// Initialize gateways
	authGW := authGateway.NewAuthGW(natsClient, configs)
	adminGW := adminGateway.NewAdminGW(natsClient, configs)
	billingGW := accessGateway.NewBillingGW(redisClient, configs)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(authRepo, authGW, configs)
	oauthUC := oauthUsecase.NewOAuthUC(stateRepo, configs)
	adminUC := adminUsecase.NewAdminUC(adminRepo, adminGW, configs)
	accessUC := accessUsecase.NewAccessUC(accessRepo, billingGW)

	// Initialize handlers
	authH := authHandler.NewAuthHandler(authUC, configs)
	oauthH := oauthHandler.NewOAuthHandler(oauthUC)
	adminH := adminHandler.NewAdminHandler(adminUC, configs)
	accessH := accessHandler.NewAccessHandler(accessUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.TransactionMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
		"nats": func(ctx context.Context) error {
			return natsClient.GetConn().FlushWithContext(ctx)
		},
	})

	// Session middlewares and per-route rate limiters
	sessionMW := middleware.SessionAuth(configs.Session, configs.JWT)
	adminSessionMW := middleware.AdminSessionAuth(configs.Session, configs.JWT)
	superAdminMW := middleware.RequireRole(models.RoleSuperAdmin)
	authLimiter := middleware.IPRateLimiter(configs.OTP.MaxAttempts,
		time.Duration(configs.OTP.AttemptWindow)*time.Minute, redisClient)
	adminLimiter := middleware.IPRateLimiter(configs.Admin.MaxLoginFails,
		time.Duration(configs.Admin.LockoutMinutes)*time.Minute, redisClient)

	// Register service routes
	authH.RegisterRoutes(e, authLimiter, sessionMW)
	oauthH.RegisterRoutes(e)
	adminH.RegisterRoutes(e, adminLimiter, adminSessionMW, superAdminMW)
	accessH.RegisterRoutes(e, sessionMW)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated abnormally",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
