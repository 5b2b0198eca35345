package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ritmo/config"
	"ritmo/cron"
	"ritmo/database"
	academyRepoPkg "ritmo/database/repository/academy"
	attendanceRepoPkg "ritmo/database/repository/attendance"
	eventRepoPkg "ritmo/database/repository/event"
	userRepoPkg "ritmo/database/repository/user"
	"ritmo/handlers"
	"ritmo/routes"
	"ritmo/services/attendance"
	"ritmo/services/explore"
	"ritmo/services/export"
	"ritmo/services/schedule"
	userSvc "ritmo/services/user"
	"ritmo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCaches()
	utils.StartHealthMonitor(database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	academyRepo := academyRepoPkg.NewMongoAcademyRepo()
	attendanceRepo := attendanceRepoPkg.NewMongoAttendanceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	expansionCache := schedule.NewExpansionCache(schedule.DefaultCacheConfig)
	defer expansionCache.Close()

	attendanceService := &attendance.DefaultAttendanceService{
		Repo:  attendanceRepo,
		Cache: utils.GetCacheClient(),
	}
	exploreService := &explore.DefaultExploreService{
		Repo:       eventRepo,
		Attendance: attendanceService,
		Cache:      expansionCache,
		Feed:       &explore.RedisFeedStore{Client: utils.GetCacheClient()},
		Lookahead:  config.AppConfig.FeedLookaheadCount,
	}
	exportService := export.NewDefaultExportService()
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}

	// handlers.
	exploreHandler := &handlers.ExploreHandler{ExploreService: exploreService}
	eventHandler := &handlers.EventHandler{Repo: eventRepo}
	academyHandler := &handlers.AcademyHandler{Repo: academyRepo}
	attendanceHandler := &handlers.AttendanceHandler{AttendanceService: attendanceService}
	exportHandler := &handlers.ExportHandler{Repo: eventRepo, ExportService: exportService}
	userHandler := &handlers.UserHandler{UserService: userService}

	handlerBundle := &handlers.HandlerBundle{
		// Explore endpoints.
		ExploreHandler:  exploreHandler.ExploreHandlerFunc,
		UpcomingHandler: exploreHandler.UpcomingHandlerFunc,

		// Event endpoints.
		GetEventHandler:           eventHandler.GetEventHandler,
		GetEventsByAcademyHandler: eventHandler.GetEventsByAcademyHandler,
		CreateEventHandler:        eventHandler.CreateEventHandler,
		UpdateEventHandler:        eventHandler.UpdateEventHandler,
		DeleteEventHandler:        eventHandler.DeleteEventHandler,
		DownloadICSHandler:        exportHandler.DownloadICSHandler,
		GoogleCalendarHandler:     exportHandler.GoogleCalendarHandler,

		// Academy endpoints.
		GetAcademyHandler:    academyHandler.GetAcademyHandler,
		ListAcademiesHandler: academyHandler.ListAcademiesHandler,
		CreateAcademyHandler: academyHandler.CreateAcademyHandler,

		// Attendance endpoints.
		AttendHandler:          attendanceHandler.AttendHandler,
		UnattendHandler:        attendanceHandler.UnattendHandler,
		AttendanceCountHandler: attendanceHandler.CountHandler,
		MyAttendanceHandler:    attendanceHandler.ListMineHandler,

		// User endpoints.
		RegisterUserHandler:      userHandler.RegisterUserHandler,
		AuthenticateUserHandler:  userHandler.AuthenticateUserHandler,
		GetProfileHandler:        userHandler.GetProfileHandler,
		UpdatePreferencesHandler: userHandler.UpdatePreferencesHandler,
		DeleteUserHandler:        userHandler.DeleteUserHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background feed refresher.
	feedRefresher := &cron.FeedRefresher{ExploreService: exploreService}
	if err := feedRefresher.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start feed refresher: %v", err)
	}
	defer feedRefresher.Stop()

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
