package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/breeew/datas-api/internal/core"
	"github.com/breeew/datas-api/internal/response"
	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

func I18n() gin.HandlerFunc {
	l := i18n.NewLocalizer(lo.Keys(i18n.ALLOW_LANG)...)

	return response.ProvideResponseLocalizer(l)
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Accept-Language")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Cache-Control, Content-Language, Content-Type")
	}
	if method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// RequestLogger logs method, path, status, duration and client ip of each request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote", c.ClientIP()),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.LogAttrs(c, slog.LevelError, "request", attrs...)
		case status >= http.StatusBadRequest:
			logger.LogAttrs(c, slog.LevelWarn, "request", attrs...)
		default:
			logger.LogAttrs(c, slog.LevelInfo, "request", attrs...)
		}
	}
}

// Metrics records request count and latency by matched route.
func Metrics(core *core.Core) gin.HandlerFunc {
	m := core.Metrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HttpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HttpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// UseLimit rejects clients exceeding perMinute requests per minute.
func UseLimit(core *core.Core, operation string, perMinute int, genKeyFunc func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(operation+":"+genKeyFunc(c), perMinute).Allow() {
			response.APIError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests))
		}
	}
}
