package routes

import (
	"net/http"

	"github.com/totomace/VitaZen-sub000/controllers"
	"github.com/totomace/VitaZen-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every HTTP handler group the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Health        *controllers.HealthController
	History       *controllers.HistoryController
	Notes         *controllers.NoteController
	Reminders     *controllers.ReminderController
	Water         *controllers.WaterController
	Goals         *controllers.GoalController
	Analytics     *controllers.AnalyticsController
	Devices       *controllers.DeviceController
	Notifications *controllers.NotificationController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(h Controllers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.LoggerMiddleware())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(jwtSecret))

	user := protected.Group("/user")
	{
		user.GET("/profile", h.User.GetProfile)
		user.PUT("/profile", h.User.UpdateProfile)
		user.DELETE("", h.User.DeleteAccount)
	}

	health := protected.Group("/health")
	{
		health.GET("", h.Health.GetSnapshot)
		health.PUT("", h.Health.UpdateSnapshot)
		health.GET("/bmi", h.Health.GetBMI)
		health.GET("/history", h.Health.ListHistory)
		health.DELETE("/history", h.Health.ClearHistory)
		health.GET("/history/:id", h.Health.GetRecord)
		health.PUT("/history/:id", h.Health.UpdateRecord)
		health.DELETE("/history/:id", h.Health.DeleteRecord)
	}

	history := protected.Group("/history")
	{
		history.GET("", h.History.List)
		history.DELETE("", h.History.Clear)
		history.DELETE("/:id", h.History.Delete)
	}

	notes := protected.Group("/notes")
	{
		notes.POST("", h.Notes.Create)
		notes.GET("", h.Notes.List)
		notes.GET("/:id", h.Notes.Get)
		notes.PUT("/:id", h.Notes.Update)
		notes.DELETE("/:id", h.Notes.Delete)
	}

	reminders := protected.Group("/reminders")
	{
		reminders.POST("", h.Reminders.Create)
		reminders.GET("", h.Reminders.List)
		reminders.GET("/:id", h.Reminders.Get)
		reminders.PUT("/:id", h.Reminders.Update)
		reminders.POST("/:id/toggle", h.Reminders.Toggle)
		reminders.DELETE("/:id", h.Reminders.Delete)
	}

	water := protected.Group("/water")
	{
		water.POST("", h.Water.Drink)
		water.GET("/today", h.Water.Today)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", h.Goals.GetGoals)
		goals.PUT("", h.Goals.UpdateGoals)
	}

	protected.GET("/analytics/weekly", h.Analytics.GetWeeklyOverview)
	protected.POST("/devices", h.Devices.Register)

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notifications.List)
		notifications.POST("/toggle", h.Notifications.Toggle)
		notifications.POST("/test", h.Notifications.Test)
	}

	protected.GET("/ws/notifications", h.Realtime.NotificationsWS)

	return r
}
