package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/learnhub-app/learnhub-api/internal/config"
	"github.com/learnhub-app/learnhub-api/internal/container"
	"github.com/learnhub-app/learnhub-api/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Fine in deployed environments where env comes from the platform.
		config.Logger().Info("No .env file found, using process environment")
	}

	c := container.New()
	defer c.Cache.Close()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		CourseHandler:    c.CourseContainer.Handler,
		GeneratorHandler: c.GeneratorContainer.Handler,
		ResultHandler:    c.ResultContainer.Handler,
		ChatHandler:      c.ChatContainer.Handler,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Generation requests can legitimately take minutes while the upstream
	// model retries, so the write timeout is a ceiling, not a typical value.
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  time.Minute,
	}

	go func() {
		config.Logger().Infof("Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger().WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		config.Logger().WithError(err).Error("Forced shutdown")
	}
	config.Logger().Info("Server stopped")
}
