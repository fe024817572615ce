package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hop4deals/deals-api/docs"
	"github.com/hop4deals/deals-api/internal/api/handler"
	"github.com/hop4deals/deals-api/internal/api/middleware"
	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
	"github.com/hop4deals/deals-api/internal/core/service"
	"github.com/hop4deals/deals-api/internal/core/token"
	mongodb "github.com/hop4deals/deals-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hop4deals/deals-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The route
// table below is the complete access-control matrix: every mutating endpoint
// names its gate next to its path, so the policy can be audited in one
// screen.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	tokens *token.Manager,
	events ports.AuthEventRecorder,
	eventStore ports.AuthEventRepository,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hop4deals"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	dealRepo := mongodb.NewDealRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	seasonRepo := mongodb.NewSeasonRepository(db)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, tokens)
	accountService := service.NewAccountService(accountRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	brandService := service.NewBrandService(brandRepo)
	dealService := service.NewDealService(dealRepo, brandRepo)
	blogService := service.NewBlogService(blogRepo)
	seasonService := service.NewSeasonService(seasonRepo)

	// --- Handlers ---
	throttle := redisdb.NewLoginThrottle(rdb)
	authHandler := handler.NewAuthHandler(authService, throttle, events, log)
	authEventHandler := handler.NewAuthEventHandler(eventStore)
	userHandler := handler.NewUserHandler(accountService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	brandHandler := handler.NewBrandHandler(brandService)
	dealHandler := handler.NewDealHandler(dealService)
	blogHandler := handler.NewBlogHandler(blogService)
	seasonHandler := handler.NewSeasonHandler(seasonService)

	// --- Gates ---
	authn := middleware.Authenticate(authService, log)
	adminOnly := middleware.RequireRole(events, domain.RoleAdmin)
	canCategories := middleware.RequirePrivilege(events, domain.ResourceCategories)
	canBrands := middleware.RequirePrivilege(events, domain.ResourceBrands)
	canDeals := middleware.RequirePrivilege(events, domain.ResourceDeals)
	canBlogs := middleware.RequirePrivilege(events, domain.ResourceBlogs)
	canSeasons := middleware.RequirePrivilege(events, domain.ResourceSeasons)

	apiGroup := e.Group("/api")

	// --- Auth ---
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/profile", authHandler.Profile, authn)
	apiGroup.GET("/auth/events", authEventHandler.List, authn, adminOnly)

	// --- Users (admin only) ---
	apiGroup.GET("/users", userHandler.List, authn, adminOnly)
	apiGroup.GET("/users/:id", userHandler.Get, authn, adminOnly)
	apiGroup.POST("/users", userHandler.Create, authn, adminOnly)
	apiGroup.PUT("/users/:id", userHandler.Update, authn, adminOnly)
	apiGroup.DELETE("/users/:id", userHandler.Delete, authn, adminOnly)

	// --- Categories ---
	apiGroup.GET("/categories", categoryHandler.List)
	apiGroup.GET("/categories/:id", categoryHandler.Get)
	apiGroup.POST("/categories", categoryHandler.Create, authn, canCategories)
	apiGroup.PUT("/categories/:id", categoryHandler.Update, authn, canCategories)
	apiGroup.DELETE("/categories/:id", categoryHandler.Delete, authn, adminOnly)

	// --- Brands ---
	apiGroup.GET("/brands", brandHandler.List)
	apiGroup.GET("/brands/:id", brandHandler.Get)
	apiGroup.POST("/brands", brandHandler.Create, authn, canBrands)
	apiGroup.PUT("/brands/:id", brandHandler.Update, authn, canBrands)
	apiGroup.DELETE("/brands/:id", brandHandler.Delete, authn, adminOnly)

	// --- Deals ---
	apiGroup.GET("/deals", dealHandler.List)
	apiGroup.GET("/deals/:id", dealHandler.Get)
	apiGroup.POST("/deals", dealHandler.Create, authn, canDeals)
	apiGroup.PUT("/deals/:id", dealHandler.Update, authn, canDeals)
	apiGroup.DELETE("/deals/:id", dealHandler.Delete, authn, adminOnly)

	// --- Blogs ---
	apiGroup.GET("/blogs", blogHandler.List)
	apiGroup.GET("/blogs/:id", blogHandler.Get)
	apiGroup.POST("/blogs", blogHandler.Create, authn, canBlogs)
	apiGroup.PUT("/blogs/:id", blogHandler.Update, authn, canBlogs)
	apiGroup.DELETE("/blogs/:id", blogHandler.Delete, authn, adminOnly)

	// --- Seasons ---
	apiGroup.GET("/seasons", seasonHandler.List)
	apiGroup.GET("/seasons/:id", seasonHandler.Get)
	apiGroup.POST("/seasons", seasonHandler.Create, authn, canSeasons)
	apiGroup.PUT("/seasons/:id", seasonHandler.Update, authn, canSeasons)
	apiGroup.DELETE("/seasons/:id", seasonHandler.Delete, authn, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
