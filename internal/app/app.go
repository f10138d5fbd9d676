package app

import (
	"fmt"

	"marketplace_backend/database"
	"marketplace_backend/internal/config"
	"marketplace_backend/internal/handlers"
	"marketplace_backend/internal/logger"
	"marketplace_backend/internal/middleware"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/routes"
	"marketplace_backend/internal/services"
	"marketplace_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles services, handlers and routes into a gin engine.
// Split out of Run so tests can mount the full application on httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	authMW := middleware.AuthMiddleware(cfg.JWT.Secret)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	marketRepo := repositories.NewMarketRepository()
	productRepo := repositories.NewProductRepository()
	categoryRepo := repositories.NewCategoryRepository()

	sessionService := services.NewSessionService(sessionRepo)
	authService := services.NewAuthService(userRepo, sessionService, cfg.JWT.Secret)
	userService := services.NewUserService(userRepo)
	marketService := services.NewMarketService(marketRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	return &services.ServiceContainer{
		AuthService:     authService,
		SessionService:  sessionService,
		UserService:     userService,
		MarketService:   marketService,
		ProductService:  productService,
		CategoryService: categoryService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService, container.SessionService),
		SessionHandler:  handlers.NewSessionHandler(baseHandler, container.SessionService),
		UserHandler:     handlers.NewUserHandler(baseHandler, container.UserService),
		MarketHandler:   handlers.NewMarketHandler(baseHandler, container.MarketService),
		ProductHandler:  handlers.NewProductHandler(baseHandler, container.ProductService),
		CategoryHandler: handlers.NewCategoryHandler(baseHandler, container.CategoryService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
