package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vatsalraicha/portfolio/internal/reqlog"
	"github.com/vatsalraicha/portfolio/internal/visits"
)

const requestIDHeader = "X-Request-Id"

// requestID ensures every request has a stable id, stores it in the request
// context for reqlog, echoes it back and logs one line per request.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(reqlog.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(requestIDHeader, rid)

		start := time.Now()
		c.Next()

		log.Printf(
			"[req] id=%s method=%s path=%s status=%d latency=%s",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/health",
	"/stats/",
	"/favicon",
}

// trackVisits records successful page views in the background. Asset and
// operational paths and htmx fragment requests are skipped, and Do Not
// Track is honoured.
func trackVisits(store *visits.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.Writer.Status() >= 400 || isHTMX(c) {
			return
		}
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		logger := reqlog.New(c.Request.Context())
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Record(ctx, ip, ua, path); err != nil {
				logger.Error("record_visit", err)
			}
		}()
	}
}
