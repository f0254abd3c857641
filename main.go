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

	"bookerino-backend/config"
	"bookerino-backend/console"
	"bookerino-backend/controllers"
	"bookerino-backend/routes"
	"bookerino-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established, migrations applied")

	// Core services, shared by both surfaces
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	mealService := services.NewMealService(db)
	analyticsService := services.NewAnalyticsService(db)

	// "bookerino console" runs the front-desk menu instead of the server
	if len(os.Args) > 1 && os.Args[1] == "console" {
		console.New(roomService, bookingService, reviewService, analyticsService,
			os.Stdin, os.Stdout).Run()
		return
	}

	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	mealController := controllers.NewMealController(mealService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	router := routes.SetupRouter(
		roomController,
		bookingController,
		reviewController,
		mealController,
		analyticsController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
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

	// Graceful shutdown on interrupt
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
