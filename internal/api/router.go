package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stockroom/stock-api/docs"
	"github.com/stockroom/stock-api/internal/api/handler"
	"github.com/stockroom/stock-api/internal/api/middleware"
	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/service"
	"github.com/stockroom/stock-api/internal/infrastructure/config"
	mongodb "github.com/stockroom/stock-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stockroom/stock-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("stockapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	listCache := redisdb.NewListCache(rdb, cfg.Cache.TTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	categoryService := service.NewCategoryService(categoryRepo, listCache, log)
	productService := service.NewProductService(productRepo, categoryRepo, listCache, log)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Categories ---
	categories := e.Group("/api/categoria")
	categories.GET("", categoryHandler.List, authn)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authn, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authn, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authn, adminOnly)

	// --- Products ---
	products := e.Group("/api/producto")
	products.GET("", productHandler.List, authn)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authn, adminOnly)
	products.PUT("/:id", productHandler.Update, authn, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authn, adminOnly)

	// --- Users (admin only) ---
	users := e.Group("/api/usuario", authn, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
