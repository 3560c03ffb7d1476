package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/logging"
	"hotel-reservation/metrics"
	"hotel-reservation/routes"
	"hotel-reservation/services"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	logger := logging.New()
	metrics.Register()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	logger.Info().Msg("database connection established, migrations applied")

	// Services
	availabilityService := services.NewAvailabilityService(db, logger)
	bookingService := services.NewBookingService(db, logger)
	customerService := services.NewCustomerService(db, logger)
	hotelService := services.NewHotelService(db, logger)
	roomService := services.NewRoomService(db, logger)
	roomTypeService := services.NewRoomTypeService(db, logger)

	// Controllers
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	customerController := controllers.NewCustomerController(customerService)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)

	router := routes.SetupRouter(
		availabilityController,
		bookingController,
		customerController,
		hotelController,
		roomController,
		roomTypeController,
		logger,
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
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped gracefully")
}
