package routes

import (
	"net/http"
	"time"

	"ritmo/handlers"
	"ritmo/middleware"
	"ritmo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterExploreRoutes registers the public feed endpoints.
func RegisterExploreRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/explore")
	{
		api.GET("", hb.ExploreHandler)
	}
}

// RegisterEventRoutes registers event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		// Public read endpoints.
		api.GET("/:id", hb.GetEventHandler)
		api.GET("/:id/upcoming", hb.UpcomingHandler)
		api.GET("/:id/export/ics", hb.DownloadICSHandler)
		api.GET("/:id/export/google", hb.GoogleCalendarHandler)

		// Mutations require authentication.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hb.CreateEventHandler)
		protected.PUT("/:id", hb.UpdateEventHandler)
		protected.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterAcademyRoutes registers academy endpoints.
func RegisterAcademyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/academies")
	{
		api.GET("", hb.ListAcademiesHandler)
		api.GET("/:id", hb.GetAcademyHandler)
		api.GET("/:id/events", hb.GetEventsByAcademyHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hb.CreateAcademyHandler)
	}
}

// RegisterAttendanceRoutes registers RSVP endpoints.
func RegisterAttendanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/attendance")
	{
		api.GET("/count", hb.AttendanceCountHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hb.AttendHandler)
		protected.DELETE("", hb.UnattendHandler)
		protected.GET("/mine", hb.MyAttendanceHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.GET("/me", hb.GetProfileHandler)
		protected.PUT("/me/preferences", hb.UpdatePreferencesHandler)
		protected.DELETE("/me", hb.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterExploreRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAcademyRoutes(r, hb)
	RegisterAttendanceRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
