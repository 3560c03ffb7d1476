package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the route table.
func SetupRouter(
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	cc *controllers.CustomerController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
	logger zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/public/rooms/search", ac.Search)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// /customer must stay ahead of /:id
			bookings.GET("/customer", bc.GetBookingsForCustomer)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PATCH("/:id/status", bc.UpdateStatus)
		}

		customers := api.Group("/customers")
		{
			customers.POST("/register", cc.Register)
			customers.GET("", cc.GetByEmail)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/top-rated", hc.GetTopRated)
			hotels.GET("/:id", hc.GetHotelByID)
			hotels.GET("/:id/room-types", rtc.ListByHotel)
			hotels.POST("", hc.CreateHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("/:id", rtc.GetRoomTypeByID)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}
	}

	return r
}
