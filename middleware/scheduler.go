package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/protexflow/protexflow-backend/services"
)

// SchedulerMiddleware termin zamanlayıcısını context'e koyar;
// elle tetikleme ucu buradan erişir
func SchedulerMiddleware(s *services.DeadlineScheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("scheduler", s)
		c.Next()
	}
}
