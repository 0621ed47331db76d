package middlewares

import (
	"time"

	"github.com/fsdevblog/smartlinks/internal/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedRoute метка для запросов, не попавших ни в один маршрут.
const unmatchedRoute = "unmatched"

// MetricsMiddleware учитывает запросы в метриках Prometheus. В метку route идет шаблон маршрута,
// чтобы идентификаторы смартлинков не раздували кардинальность.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.RequestStarted()
		defer done()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTP(metrics.HTTPObservation{
			Method:   c.Request.Method,
			Route:    route,
			Status:   c.Writer.Status(),
			Duration: time.Since(start),
		})
	}
}
