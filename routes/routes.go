package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/protexflow/protexflow-backend/controllers"
	"github.com/protexflow/protexflow-backend/middleware"
	"github.com/protexflow/protexflow-backend/services"
	"github.com/protexflow/protexflow-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, scheduler *services.DeadlineScheduler) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.Use(middleware.DBMiddleware(db))
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(db), middleware.DBMiddleware(db))

		// Bildirimler
		user.GET("/notifications", controllers.GetNotifications)
		user.GET("/notifications/unread-count", controllers.GetUnreadCount)
		user.PATCH("/notifications/read-all", controllers.MarkAllAsRead)
		user.PATCH("/notifications/:id/read", controllers.MarkNotificationAsRead)
		user.DELETE("/notifications/read", controllers.DeleteReadNotifications)
		user.DELETE("/notifications/:id", controllers.DeleteNotification)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(db), middleware.DBMiddleware(db), middleware.RequireRoles("ADMIN"))

		// Üretim takibi
		admin.GET("/production", controllers.GetProductionTrackings)
		admin.GET("/production/export", controllers.ExportProductionReport)
		admin.POST("/production/check-deadlines", middleware.SchedulerMiddleware(scheduler), controllers.CheckProductionDeadlines)
	}

	r.GET("/ws/notifications", middleware.DBMiddleware(db), ws.HandleNotificationWebSocket)

	return r
}
