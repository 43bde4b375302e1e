package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campushub/campus-api/audit"
	"github.com/campushub/campus-api/client"
	"github.com/campushub/campus-api/config"
	"github.com/campushub/campus-api/controller"
	"github.com/campushub/campus-api/db"
	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/router"
	"github.com/campushub/campus-api/service"
	"github.com/campushub/campus-api/signature"
	"github.com/campushub/campus-api/util"
	helper_util "github.com/campushub/campus-api/util/helper"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize SQLite
	if err := db.InitSQLite(); err != nil {
		logger.Fatal("Failed to initialize SQLite", zap.Error(err))
	}
	defer db.CloseSQLite()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	minMenuDate, err := helper_util.ParseDate(config.GetString("sync.minMenuDate"))
	if err != nil {
		logger.Fatal("Invalid sync.minMenuDate", zap.Error(err))
	}
	validationUtil := util.NewValidationUtil(minMenuDate)
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService()
	auditRepository, _ := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	auditService := audit.NewService(auditRepository)

	// Remote feed client and chat signature verifier
	menuClient := client.NewMenuClient(config.GetString("remote.menuURL"))

	rawKeys := config.GetStringSlice("chat.publicKeys")
	chatKeys := make([]model.ChatPublicKey, 0, len(rawKeys))
	for _, key := range rawKeys {
		chatKeys = append(chatKeys, model.ChatPublicKey{Key: key})
	}
	verifier := signature.NewVerifier(chatKeys, signature.Algorithm(config.GetString("chat.signatureAlgorithm")))

	// Initialize services
	services, err := service.InitializeServices(
		db.SQLite,
		menuClient,
		verifier,
		auditService,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
		config.GetDuration("sync.menuTTL"),
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Warm the menu cache on startup; a failed sync is retried on the
	// next eligible window.
	go func() {
		if _, err := services.Menu.SyncMenus(ctx, false); err != nil {
			logger.Warn("Initial menu sync failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
