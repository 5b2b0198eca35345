package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for wiring.
type HandlerBundle struct {
	// Explore endpoints
	ExploreHandler  gin.HandlerFunc
	UpcomingHandler gin.HandlerFunc

	// Event endpoints
	GetEventHandler           gin.HandlerFunc
	GetEventsByAcademyHandler gin.HandlerFunc
	CreateEventHandler        gin.HandlerFunc
	UpdateEventHandler        gin.HandlerFunc
	DeleteEventHandler        gin.HandlerFunc
	DownloadICSHandler        gin.HandlerFunc
	GoogleCalendarHandler     gin.HandlerFunc

	// Academy endpoints
	GetAcademyHandler    gin.HandlerFunc
	ListAcademiesHandler gin.HandlerFunc
	CreateAcademyHandler gin.HandlerFunc

	// Attendance endpoints
	AttendHandler          gin.HandlerFunc
	UnattendHandler        gin.HandlerFunc
	AttendanceCountHandler gin.HandlerFunc
	MyAttendanceHandler    gin.HandlerFunc

	// User endpoints
	RegisterUserHandler      gin.HandlerFunc
	AuthenticateUserHandler  gin.HandlerFunc
	GetProfileHandler        gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	DeleteUserHandler        gin.HandlerFunc
}
