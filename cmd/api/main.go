package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-requester/config"
	"review-requester/routes"
	"review-requester/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings := config.LoadSettings()

	if logFile, err := config.InitLogging(settings.LogDir); err != nil {
		log.Printf("Warning: logging to stdout only: %v", err)
	} else {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB(settings)

	// Seed languages and reviewers
	seedData, err := config.LoadSeedData(settings.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	summary, err := services.NewSeedService(config.DB, settings.EmailDomain).Seed(context.Background(), seedData)
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Printf("Seeded %d languages and %d reviewers", summary.LanguagesCreated, summary.ReviewersCreated)

	// Set Gin mode
	if settings.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	mailer := config.NewMailer(config.LoadSMTPSettings())
	router := routes.NewEngine(config.DB, settings, mailer)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", settings.Port)
		if mailer.Enabled() {
			log.Printf("Review notification mail enabled")
		}
		if settings.JWTSecret != "" {
			log.Printf("API writes require a bearer token")
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
