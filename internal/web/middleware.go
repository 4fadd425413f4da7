package web

import (
	"strings"
	"time"

	"termfolio/internal/logging"
	"termfolio/internal/store"

	"github.com/gin-gonic/gin"
)

func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugw("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// visitorTracking records page views with hashed IPs. API calls, static
// files and requests carrying "DNT: 1" are not recorded.
func visitorTracking(st *store.Store, log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		if err := st.RecordVisit(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path); err != nil {
			log.Warnw("record visit", "error", err)
		}
		c.Next()
	}
}
