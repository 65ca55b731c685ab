package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tour-backend/auth"
	"tour-backend/config"
	"tour-backend/controllers"
	"tour-backend/repositories"
	"tour-backend/routes"
	"tour-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.LoadAppConfig()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Fatal("❌ ERROR: ADMIN_USERNAME and ADMIN_PASSWORD must be set. Refusing to start without admin credentials.")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("❌ ERROR: SESSION_SECRET environment variable is not set. Cannot sign admin sessions.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Repositories
	destinationRepo := repositories.NewDestinationRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Services
	destinationService := services.NewDestinationService(destinationRepo)
	packageService := services.NewPackageService(packageRepo)
	activityService := services.NewActivityService(activityRepo)
	blogService := services.NewBlogService(blogRepo)
	reviewService := services.NewReviewService(reviewRepo)
	statsService := services.NewStatsService(destinationRepo, packageRepo, activityRepo, blogRepo)
	imageService := services.NewImageService(cfg.UploadDir)

	sessions := auth.NewManager(auth.Config{
		Username:   cfg.AdminUsername,
		Password:   cfg.AdminPassword,
		Secret:     []byte(cfg.SessionSecret),
		SessionTTL: cfg.SessionTTL,
	})

	router := routes.SetupRouter(routes.Controllers{
		Destinations: controllers.NewDestinationController(destinationService),
		Packages:     controllers.NewPackageController(packageService),
		Activities:   controllers.NewActivityController(activityService),
		Blog:         controllers.NewBlogController(blogService),
		Reviews:      controllers.NewReviewController(reviewService),
		Auth:         controllers.NewAuthController(sessions),
		Upload:       controllers.NewUploadController(imageService),
		Dashboard:    controllers.NewDashboardController(statsService),
	}, sessions, cfg.UploadDir)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
