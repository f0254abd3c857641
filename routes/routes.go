package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookerino-backend/controllers"
	"bookerino-backend/middleware"
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

// SetupRouter wires controllers onto the API surface.
func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
	mc *controllers.MealController,
	ac *controllers.AnalyticsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Unsupported verbs on known paths answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rvc.GetReviews)
			reviews.POST("", rvc.CreateReview)
			reviews.PATCH("/:id/response", rvc.RespondToReview)
		}

		meals := api.Group("/meals")
		{
			meals.GET("", mc.GetMeals)
			meals.POST("", mc.CreateMeal)
			meals.POST("/:id/consume", mc.ConsumeMeal)
		}

		api.GET("/analytics", ac.GetAnalytics)
	}

	return r
}
