package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/config"
	"ledgerbook/internal/currency"
	"ledgerbook/internal/database"
	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/handlers"
	"ledgerbook/internal/logger"
	"ledgerbook/internal/middleware"
	"ledgerbook/internal/services"
	"ledgerbook/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	currencies := currency.DefaultRegistry()
	validator.Register(currencies)

	// Initialize services
	db := dbManager.DB()
	store := services.NewTransactionStore(db)
	saleService := services.NewSaleService(db, store, currencies)
	paymentService := services.NewPaymentService(store, currencies)
	accountService := services.NewAccountService(db)
	actorService := services.NewActorService(db)

	// Initialize handlers
	saleHandler := handlers.NewSaleHandler(saleService)
	paymentHandler := handlers.NewPaymentHandler(saleService, paymentService)
	accountHandler := handlers.NewAccountHandler(accountService)
	actorHandler := handlers.NewActorHandler(actorService)
	referenceHandler := handlers.NewReferenceHandler(currencies)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	sales := v1.Group("/sales")
	sales.GET("", saleHandler.ListSales)
	sales.POST("", saleHandler.CreateSale)
	sales.GET("/:id", saleHandler.GetSale)
	sales.PUT("/:id", saleHandler.UpdateSale)

	invoices := v1.Group("/invoices")
	invoices.GET("/:id/payments", paymentHandler.ListPayments)
	invoices.POST("/:id/payments", paymentHandler.SavePayment)

	accounts := v1.Group("/accounts")
	accounts.GET("", accountHandler.ListAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("/:id", accountHandler.GetAccount)

	actors := v1.Group("/actors")
	actors.GET("", actorHandler.ListActors)
	actors.POST("", actorHandler.CreateActor)
	actors.GET("/:id", actorHandler.GetActor)

	reference := v1.Group("/reference")
	reference.GET("/currencies", referenceHandler.ListCurrencies)
	reference.GET("/tax-codes", referenceHandler.ListTaxCodes)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(apperrors.ErrNotFound.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrNotFound.Code,
				"message": apperrors.ErrNotFound.Message,
			},
		})
	})

	addr := ":" + appConfig.Port
	logger.Get().Infof("Starting server on %s", addr)
	return router.Run(addr)
}
