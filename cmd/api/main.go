package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/backup"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/notify"
	"fintrack/internal/services"
	"fintrack/internal/validator"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a single-user budgeting backend: expenses, incomes, category limits, financial periods, savings goals and backups.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

const (
	shutdownTimeout = 30 * time.Second
	alertQueueSize  = 64
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
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if appConfig.MigrationsEnabled {
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	validator.Register()

	// Alert notifiers
	notifiers := notify.Multi{notify.NewLogNotifier(logger.Named("alerts"))}
	if appConfig.TelegramBotToken != "" && appConfig.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(appConfig.TelegramBotToken, appConfig.TelegramChatID)
		if err != nil {
			log.Warnw("telegram notifier disabled", "error", err)
		} else {
			notifiers = append(notifiers, tg)
		}
	}
	if appConfig.AMQPURL != "" {
		publisher, err := notify.NewAMQPPublisher(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
		if err != nil {
			log.Warnw("amqp publisher disabled", "error", err)
		} else {
			defer publisher.Close()
			notifiers = append(notifiers, publisher)
		}
	}
	dispatcher := notify.NewDispatcher(notifiers, alertQueueSize, logger.Named("alerts"))

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	budgetService := services.NewBudgetService(db, dispatcher, appConfig.DefaultMonthlyIncome)
	expenseService := services.NewExpenseService(db, budgetService)
	incomeService := services.NewIncomeService(db)
	periodService := services.NewPeriodService(db)
	savingsService := services.NewSavingsService(db)
	dashboardService := services.NewDashboardService(db)
	backupService := backup.NewService(db, dbManager.Driver(), appConfig.BackupDir)

	if err := budgetService.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize budget: %w", err)
	}

	// Initialize handlers
	issuer := middleware.NewTokenIssuer(appConfig.JWTSecret, appConfig.JWTExpirationDur)
	h := handlers.Handlers{
		Auth:      handlers.NewAuthHandler(appConfig.AdminPasswordHash, issuer, auditService),
		Expense:   handlers.NewExpenseHandler(expenseService, auditService),
		Income:    handlers.NewIncomeHandler(incomeService, auditService),
		Budget:    handlers.NewBudgetHandler(budgetService, auditService),
		Period:    handlers.NewPeriodHandler(periodService, auditService),
		Savings:   handlers.NewSavingsHandler(savingsService, auditService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Backup:    handlers.NewBackupHandler(backupService, auditService),
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(appConfig.CORSAllowedOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router, h, middleware.AdminAuth(issuer, appConfig.AdminAPIKey, appConfig.AdminAuthEnabled()))
	if !appConfig.AdminAuthEnabled() {
		log.Warn("ADMIN_PASSWORD_HASH and ADMIN_API_KEY are unset; backup routes are unauthenticated")
	}

	srv := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return dispatcher.Run(gctx) })

	if appConfig.AutoBackup && dbManager.Driver() == database.DriverSQLite {
		worker := backup.NewWorker(backupService, appConfig.BackupInterval, appConfig.BackupRetryDelay, appConfig.BackupKeep)
		g.Go(func() error { return worker.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
