package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"salesos-api/internal/auth"
	"salesos-api/internal/client/xero"
	"salesos-api/internal/constants"
	"salesos-api/internal/db"
	"salesos-api/internal/handlers"
	"salesos-api/internal/logger"
	"salesos-api/internal/middleware"
	"salesos-api/internal/services"
)

// Handler Definitions
var (
	healthHandler    *handlers.HealthHandler
	buyerHandler     *handlers.BuyerHandler
	supplierHandler  *handlers.SupplierHandler
	shopperHandler   *handlers.ShopperHandler
	userHandler      *handlers.UserHandler
	saleHandler      *handlers.SaleHandler
	quoteHandler     *handlers.QuoteHandler
	tradeHandler     *handlers.TradeHandler
	dashboardHandler *handlers.DashboardHandler
	xeroHandler      *handlers.XeroHandler

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool
	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	if os.Getenv("XERO_CLIENT_ID") == "" || os.Getenv("XERO_CLIENT_SECRET") == "" {
		logger.Fatal("XERO_CLIENT_ID and XERO_CLIENT_SECRET environment variables are required")
	}

	xeroClient := xero.NewXeroClient(
		os.Getenv("XERO_CLIENT_ID"),
		os.Getenv("XERO_CLIENT_SECRET"),
		dbQueries,
		logger.Log,
	)

	// Email is optional; without a Resend key, trade notifications are skipped.
	var emailService *services.EmailService
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		emailService = services.NewEmailService(
			apiKey,
			os.Getenv("EMAIL_FROM_ADDRESS"),
			os.Getenv("EMAIL_FROM_NAME"),
			logger.Log,
		)
	} else {
		logger.Warn("RESEND_API_KEY not set; trade notification emails disabled")
	}

	tradeService := services.NewTradeService(dbQueries, xeroClient, emailService, logger.Log)
	metricsService := services.NewDashboardMetricsService(dbQueries, logger.Log)

	commonServices := handlers.NewCommonServices(dbQueries, xeroClient, tradeService, metricsService)

	// API Handler initialization
	healthHandler = handlers.NewHealthHandler(commonServices)
	buyerHandler = handlers.NewBuyerHandler(commonServices)
	supplierHandler = handlers.NewSupplierHandler(commonServices)
	shopperHandler = handlers.NewShopperHandler(commonServices)
	userHandler = handlers.NewUserHandler(commonServices)
	saleHandler = handlers.NewSaleHandler(commonServices)
	quoteHandler = handlers.NewQuoteHandler(commonServices)
	tradeHandler = handlers.NewTradeHandler(commonServices)
	dashboardHandler = handlers.NewDashboardHandler(commonServices)
	xeroHandler = handlers.NewXeroHandler(commonServices, xeroClient)
}

func InitializeRoutes(router *gin.Engine) {
	// Initialize logger first
	logger.InitLogger()

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Tag every request with a correlation ID for tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.GetHealth)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.EnsureValidAPIKeyOrToken(dbQueries))
		{
			// Admin-only routes
			admin := protected.Group("/admin")
			admin.Use(auth.RequireRoles(constants.AdminRole))
			{
				// User management
				admin.GET("/users", userHandler.ListUsers)
				admin.POST("/users", userHandler.CreateUser)
				admin.PUT("/users/:id/role", userHandler.UpdateUserRole)
				admin.DELETE("/users/:id", userHandler.DeleteUser)

				// Shopper management
				admin.POST("/shoppers", shopperHandler.CreateShopper)
				admin.PUT("/shoppers/:id", shopperHandler.UpdateShopper)
				admin.DELETE("/shoppers/:id", shopperHandler.DeleteShopper)

				// Xero connection management
				admin.GET("/xero/status", xeroHandler.GetStatus)
				admin.GET("/xero/connect", xeroHandler.Connect)
				admin.GET("/xero/callback", xeroHandler.Callback)

				// Sale lifecycle overrides
				admin.PUT("/sales/:id/status", saleHandler.UpdateSaleStatus)
			}

			// Current user
			protected.GET("/me", userHandler.GetCurrentUser)

			// Buyers: everyone reads, brokers and admins write
			protected.GET("/buyers", buyerHandler.ListBuyers)
			protected.GET("/buyers/:id", buyerHandler.GetBuyer)
			buyerWrites := protected.Group("/buyers")
			buyerWrites.Use(auth.RequireRoles(constants.AdminRole, constants.BrokerRole))
			{
				buyerWrites.POST("", buyerHandler.CreateBuyer)
				buyerWrites.PUT("/:id", buyerHandler.UpdateBuyer)
				buyerWrites.DELETE("/:id", buyerHandler.DeleteBuyer)
			}

			// Suppliers: everyone reads, brokers and admins write
			protected.GET("/suppliers", supplierHandler.ListSuppliers)
			protected.GET("/suppliers/:id", supplierHandler.GetSupplier)
			supplierWrites := protected.Group("/suppliers")
			supplierWrites.Use(auth.RequireRoles(constants.AdminRole, constants.BrokerRole))
			{
				supplierWrites.POST("", supplierHandler.CreateSupplier)
				supplierWrites.PUT("/:id", supplierHandler.UpdateSupplier)
				supplierWrites.DELETE("/:id", supplierHandler.DeleteSupplier)
			}

			// Shoppers (read)
			protected.GET("/shoppers", shopperHandler.ListShoppers)
			protected.GET("/shoppers/:id", shopperHandler.GetShopper)

			// Sales
			protected.GET("/sales", saleHandler.ListSales)
			protected.GET("/sales/:id", saleHandler.GetSale)

			// Trade wizard
			protected.POST("/quotes/trade", quoteHandler.QuoteTrade)
			protected.POST("/trades", tradeHandler.SubmitTrade)

			// Dashboard
			protected.GET("/dashboard", dashboardHandler.GetDashboardMetrics)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Shopper-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
