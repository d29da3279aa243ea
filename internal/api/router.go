package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradeconnect/marketplace-api/internal/api/handler"
	"github.com/tradeconnect/marketplace-api/internal/api/middleware"
	"github.com/tradeconnect/marketplace-api/internal/core/ports"
	"github.com/tradeconnect/marketplace-api/internal/core/service"
	"github.com/tradeconnect/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/tradeconnect/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/tradeconnect/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// mailer delivers password-reset emails synchronously; notifier queues inquiry
// notifications and may be nil to disable them.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	mailer ports.Mailer,
	notifier ports.Notifier,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	companyRepo := mongostore.NewCompanyRepository(db)
	customerRepo := mongostore.NewCustomerRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	inquiryRepo := mongostore.NewInquiryRepository(db)
	searchCache := redisstore.NewProductSearchCache(rdb)

	hasher := service.NewPasswordHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, 24*time.Hour)

	companyAccounts := service.NewAccounts(companyRepo, hasher, tokens, mailer, cfg.FrontendURL, 0, log)
	customerAccounts := service.NewAccounts(customerRepo, hasher, tokens, mailer, cfg.FrontendURL, 0, log)

	companyService := service.NewCompanyService(companyRepo, companyAccounts, hasher, tokens, log)
	customerService := service.NewCustomerService(customerRepo, customerAccounts, hasher, tokens, log)
	productService := service.NewProductService(productRepo, companyRepo, searchCache, log)
	inquiryService := service.NewInquiryService(inquiryRepo, companyRepo, notifier, log)

	companyHandler := handler.NewCompanyHandler(companyService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)

	// Companies get 401 on a bad token and accept it via header only; customers
	// get 403 and may also pass the token by query or form for legacy clients.
	companyGuard := middleware.Guard(middleware.GuardConfig{
		Tokens: tokens,
		Store:  companyRepo,
	})
	customerGuard := middleware.Guard(middleware.GuardConfig{
		Tokens:             tokens,
		Store:              customerRepo,
		InvalidTokenStatus: http.StatusForbidden,
		AllowQueryToken:    true,
	})

	// --- Company routes ---
	company := e.Group("/api/company")
	company.POST("/signup", companyHandler.Signup)
	company.POST("/login", companyHandler.Login)
	company.POST("/forgot-password", companyHandler.ForgotPassword)
	company.PUT("/reset-password/:token", companyHandler.ResetPassword)
	company.GET("/all", companyHandler.ListAll)
	company.GET("/profile", companyHandler.Profile, companyGuard)
	company.PUT("/profile", companyHandler.UpdateProfile, companyGuard)
	company.DELETE("/profile", companyHandler.DeleteProfile, companyGuard)
	company.PUT("/update-password", companyHandler.UpdatePassword, companyGuard)
	company.GET("/inquiries", inquiryHandler.ListForCompany, companyGuard)

	// --- Customer routes ---
	customer := e.Group("/api/customer")
	customer.POST("/signup", customerHandler.Signup)
	customer.POST("/login", customerHandler.Login)
	customer.POST("/forgot-password", customerHandler.ForgotPassword)
	customer.PUT("/reset-password/:token", customerHandler.ResetPassword)
	customer.GET("/profile", customerHandler.Profile, customerGuard)
	customer.PUT("/profile", customerHandler.UpdateProfile, customerGuard)
	customer.DELETE("/profile", customerHandler.DeleteProfile, customerGuard)
	customer.PUT("/update-password", customerHandler.UpdatePassword, customerGuard)
	customer.POST("/send", inquiryHandler.Send, customerGuard)
	customer.GET("/view", inquiryHandler.ListForCustomer, customerGuard)

	// --- Product routes ---
	product := e.Group("/api/product")
	product.POST("/create", productHandler.Create, companyGuard)
	product.POST("/search", productHandler.Search)
	product.GET("/:productName/details", productHandler.Detail)
	product.GET("/company/products", productHandler.ListByCompany, companyGuard)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
