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

	"staybnb-backend/config"
	"staybnb-backend/controllers"
	"staybnb-backend/routes"
	"staybnb-backend/services"
	"staybnb-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB

	// Services
	userService := services.NewUserService(db)
	placeService := services.NewPlaceService(db)
	bookingService := services.NewBookingService(db)
	likedService := services.NewLikedService(db)
	uploadService := services.NewUploadService(cfg.UploadDir)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFromName)

	// Controllers
	authController := controllers.NewAuthController(userService, cfg)
	placeController := controllers.NewPlaceController(placeService)
	bookingController := controllers.NewBookingController(bookingService)
	likedController := controllers.NewLikedController(likedService)
	uploadController := controllers.NewUploadController(uploadService)
	emailController := controllers.NewEmailController(mailer)

	router := routes.SetupRouter(cfg, authController, placeController, bookingController,
		likedController, uploadController, emailController)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
