// File: altitude/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"altitude/config"
	"altitude/handlers"
	"altitude/middleware"
	"altitude/routes"
	"altitude/services/agent"
	"altitude/services/documents"
	"altitude/services/notification"
	"altitude/services/roller"
	"altitude/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitDocumentCache()
	utils.InitEventCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Gateways and services.
	rollerClient := roller.NewClient(roller.Config{
		ClientID:        config.AppConfig.RollerClientID,
		ClientSecret:    config.AppConfig.RollerClientSecret,
		BaseURL:         config.AppConfig.RollerBaseURL,
		AuthURL:         config.AppConfig.RollerAuthURL,
		Timeout:         time.Duration(config.AppConfig.RollerTimeoutSeconds) * time.Second,
		FallbackEnabled: config.AppConfig.RollerFallbackEnabled,
	}, logger)

	documentStore := documents.NewStore(utils.GetDocumentCacheClient())

	notificationService := notification.NewSendGridNotificationService(
		config.AppConfig.SendgridAPIKey,
		config.AppConfig.SendgridFromEmail,
		logger,
	)

	model, err := agent.NewXAIModel(
		config.AppConfig.XAIAPIKey,
		config.AppConfig.XAIBaseURL,
		config.AppConfig.XAIModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize language model: %v", err)
	}

	assistantService := &agent.DefaultAssistantService{
		Model:   model,
		Gateway: rollerClient,
		Docs:    documentStore,
		Logger:  logger,
	}

	// Handlers.
	chatHandler := handlers.NewChatHandler(assistantService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(rollerClient)
	storageHandler := handlers.NewStorageHandler(documentStore, logger)
	eventDeduper := handlers.NewRedisEventDeduper(utils.GetEventCacheClient())
	webhookHandler := handlers.NewWebhookHandler(eventDeduper, notificationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:              chatHandler.Chat,
		HealthHandler:            handlers.HealthHandler,
		GetPackagesHandler:       handlers.GetPackagesHandler,
		CheckAvailabilityHandler: availabilityHandler.CheckAvailability,
		UploadFileHandler:        storageHandler.UploadFile,
		ListFilesHandler:         storageHandler.ListFiles,
		RollerWebhookHandler:     webhookHandler.RollerWebhook,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
