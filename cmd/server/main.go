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

	"github.com/onegreenvn/repurposer-ui/docs"
	"github.com/onegreenvn/repurposer-ui/internal/clipboard"
	"github.com/onegreenvn/repurposer-ui/internal/config"
	"github.com/onegreenvn/repurposer-ui/internal/handlers"
	"github.com/onegreenvn/repurposer-ui/internal/router"
	"github.com/onegreenvn/repurposer-ui/internal/services"
	"github.com/onegreenvn/repurposer-ui/internal/utils"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Repurposer UI API
// @version 1.0
// @description Form UI that sends videos to a clip workflow webhook and shows the returned clips

// @BasePath /

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverConfig := config.GetServerConfig()
	configureLogging(serverConfig.LogLevel)

	docs.SwaggerInfo.BasePath = serverConfig.BasePath + "/"

	if utils.InitSentry() {
		defer sentry.Flush(2 * time.Second)
	}

	webhookConfig := config.GetWebhookConfig()
	webhookConfig.LogMissing()

	sseHub := services.NewSSEHub()
	webhookService := services.NewWebhookService(nil)
	clip := clipboard.New(serverConfig.ClipboardTempDir)

	sessions := services.NewSessionStore(
		func() *services.FormController {
			return services.NewFormController(webhookConfig, webhookService, clip, serverConfig.CopyFeedback)
		},
		handlers.BroadcastState(sseHub, serverConfig.BasePath),
	)

	// Forget sessions nobody has touched for a day
	cleanupService := services.NewSessionCleanupService(sessions, sseHub, time.Hour, 24*time.Hour)
	cleanupService.Start()
	defer cleanupService.Stop()

	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(sessions, sseHub, webhookConfig, serverConfig)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: r,
	}
	srv.RegisterOnShutdown(sseHub.CloseAll)

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", serverConfig.Port)
		logrus.Infof("UI: http://localhost:%s%s/", serverConfig.Port, serverConfig.BasePath)
		logrus.Infof("Swagger UI: http://localhost:%s%s/swagger/index.html", serverConfig.Port, serverConfig.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
