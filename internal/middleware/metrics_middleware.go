package middleware

import (
	"strconv"
	"time"

	"movieRadar/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records per-route latency and request counts.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(method, route, status).Inc()

			return err
		}
	}
}
