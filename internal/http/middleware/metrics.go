package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/observability"
)

// unmatchedRoute labels requests that hit no route, keeping scanner noise out
// of per-path series.
const unmatchedRoute = "unmatched"

var unmeteredPaths = map[string]bool{
	"/metrics":     true,
	"/healthcheck": true,
}

// Metrics records API request counts and latency by route template. Scrapes
// and healthchecks are not counted.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if unmeteredPaths[c.Request.URL.Path] {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
