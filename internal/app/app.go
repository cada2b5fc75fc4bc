package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/config"
	"github.com/Mithil2603/machinery-backend/internal/database"
	"github.com/Mithil2603/machinery-backend/internal/email"
	"github.com/Mithil2603/machinery-backend/internal/handlers"
	"github.com/Mithil2603/machinery-backend/internal/logger"
	"github.com/Mithil2603/machinery-backend/internal/middleware"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/internal/routes"
	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	emailProvider := email.NewSMTPProvider(cfg)
	ginRouter := SetupRouter(cfg, gormDB, emailProvider)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. The email provider is
// injected so tests can substitute a mock.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	cookies := auth.NewCookieManager(cfg.Server.Env)

	userRepo := repositories.NewUserRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)
	feedbackRepo := repositories.NewFeedbackRepository(gormDB)

	authService := services.NewAuthService(userRepo, tokens, emailProvider, cfg.App.BaseURL)
	orderService := services.NewOrderService(orderRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, catalogRepo)
	inquiryService := services.NewInquiryService(emailProvider, cfg.Email.InquiryTo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(base, authService, cookies, tokens),
		OrderHandler:    handlers.NewOrderHandler(base, orderService, tokens),
		CatalogHandler:  handlers.NewCatalogHandler(base, catalogService, tokens),
		FeedbackHandler: handlers.NewFeedbackHandler(base, feedbackService, tokens),
		InquiryHandler:  handlers.NewInquiryHandler(base, inquiryService),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.App.AllowedOrigins))
	return ginRouter
}
