package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/dinehub/restaurant-system/internal/api/handler"
	"github.com/dinehub/restaurant-system/internal/api/middleware"
	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/service"
	"github.com/dinehub/restaurant-system/internal/infrastructure/config"
	mongodb "github.com/dinehub/restaurant-system/internal/infrastructure/db/mongo"
	redisdb "github.com/dinehub/restaurant-system/internal/infrastructure/db/redis"

	_ "github.com/dinehub/restaurant-system/docs"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongodriver.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("restaurant"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := redisdb.NewRoleCache(mongodb.NewRoleRepository(db), rdb, cfg.Redis.RoleCacheTTL, log)
	orderRepo := mongodb.NewOrderRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	// --- Services ---
	accessService := service.NewAccessService(roleRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	userService := service.NewUserService(userRepo, log)
	orderService := service.NewOrderService(orderRepo, menuRepo, log)
	roleService := service.NewRoleService(roleRepo, log)
	menuService := service.NewMenuService(menuRepo, categoryRepo, log)
	dashboardService := service.NewDashboardService(orderRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, accessService)
	userHandler := handler.NewUserHandler(userService)
	orderHandler := handler.NewOrderHandler(orderService)
	roleHandler := handler.NewRoleHandler(roleService)
	menuHandler := handler.NewMenuHandler(menuService)
	categoryHandler := handler.NewCategoryHandler(menuService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	authn := middleware.Auth(cfg.JWTSecret, userRepo)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.GET("/registration-status", authHandler.RegistrationStatus)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authn)
	auth.PUT("/profile", authHandler.UpdateProfile, authn)
	auth.POST("/change-password", authHandler.ChangePassword, authn)
	auth.POST("/refresh", authHandler.Refresh, authn)
	auth.POST("/logout", authHandler.Logout, authn)
	auth.POST("/admin/register-user", authHandler.AdminRegister, authn,
		middleware.RequireRoles(accessService, "users", domain.RoleAdmin))

	// --- Role-permission table (admin only) ---
	roles := apiGroup.Group("/roles", authn,
		middleware.RequireRoles(accessService, domain.PageSettings, domain.RoleAdmin))
	roles.GET("", roleHandler.Table)
	roles.PUT("", roleHandler.Replace)

	// --- Orders ---
	orders := apiGroup.Group("/orders", authn,
		middleware.RequirePermission(accessService, "orders"))
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/stats", orderHandler.Stats)
	orders.PATCH("/:id", orderHandler.Update)
	orders.PATCH("/:id/pay", orderHandler.Pay)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Menu and categories ---
	menu := apiGroup.Group("/menu", authn,
		middleware.RequirePermission(accessService, "menu"))
	menu.GET("", menuHandler.List)
	menu.POST("", menuHandler.Create)
	menu.PATCH("/:id", menuHandler.Update)
	menu.PATCH("/:id/availability", menuHandler.ToggleAvailability)
	menu.DELETE("/:id", menuHandler.Delete)

	categories := apiGroup.Group("/categories", authn,
		middleware.RequirePermission(accessService, "menu"))
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Users (authenticated, no page gate) ---
	users := apiGroup.Group("/users", authn)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Dashboard ---
	dashboard := apiGroup.Group("/dashboard", authn,
		middleware.RequirePermission(accessService, "dashboard"))
	dashboard.GET("/summary", dashboardHandler.Summary)
	dashboard.GET("/sales-trends", dashboardHandler.SalesTrends)
	dashboard.GET("/top-selling", dashboardHandler.TopSelling)
	dashboard.GET("/user-roles", dashboardHandler.UserRoles)
	dashboard.GET("/recent-activities", dashboardHandler.RecentActivities)

	// --- Uploads ---
	apiGroup.POST("/uploads", uploadHandler.Upload, authn)
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
