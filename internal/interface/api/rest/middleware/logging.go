package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

func skipLog(r *http.Request) bool {
	return r.Method == http.MethodOptions ||
		r.URL.Path == "/favicon.ico" ||
		strings.HasSuffix(r.URL.Path, "/metrics") ||
		strings.HasSuffix(r.URL.Path, "/healthz")
}

// RequestLogGin logs one line per request. Bodies are truncated and
// multipart payloads are never read.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipLog(c.Request) {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			if strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
				body = "<multipart/form-data omitted>"
			} else {
				var buf bytes.Buffer
				_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
				body = buf.String()
				rest := c.Request.Body
				c.Request.Body = struct {
					io.Reader
					io.Closer
				}{io.MultiReader(bytes.NewReader(buf.Bytes()), rest), rest}
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if a := Actor(c); a != nil {
			fields = append(fields, zap.Uint64("actor_id", uint64(a.ID)))
		}

		logger.Info("HTTP request", fields...)
	}
}
