package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"idea_api/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDHeader carries the correlation id back to the client so it can
// match server-side log lines against its own observation.
const RequestIDHeader = "X-Request-ID"

// maxCapturedBody bounds how much of a request body is retained for failure
// diagnostics.
const maxCapturedBody = 64 * 1024

// Tracer wraps every request as one traced unit of work: it assigns a fresh
// correlation id (client-supplied ids are ignored), logs a started line,
// delegates, then logs a completed or failed line carrying the same id and
// the elapsed time. Failures are observed and re-raised, never swallowed;
// the outer recovery middleware still owns the status-code mapping.
func Tracer() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := logging.NewRequestID()
		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		// Retain the body up front; once a handler consumed it there is
		// nothing left to capture at failure time. GETs and bodiless
		// requests have nothing worth retaining.
		var body string
		if c.Request.Method != http.MethodGet && c.Request.ContentLength != 0 {
			body = captureBody(c)
		}

		log := logging.For(ctx)
		start := time.Now()

		log.Info("request started",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)

		defer func() {
			elapsed := time.Since(start)

			if r := recover(); r != nil {
				log.Error("request failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.String("request_body", body),
					zap.String("request_query_params", c.Request.URL.RawQuery),
					zap.Any("request_path_params", pathParams(c)),
					zap.Duration("elapsed", elapsed),
				)
				panic(r)
			}

			if len(c.Errors) > 0 {
				log.Error("request failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("errors", c.Errors.String()),
					zap.String("request_body", body),
					zap.String("request_query_params", c.Request.URL.RawQuery),
					zap.Any("request_path_params", pathParams(c)),
					zap.Duration("elapsed", elapsed),
				)
				return
			}

			log.Info("request completed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.Duration("elapsed", elapsed),
			)
		}()

		c.Next()
	}
}

// captureBody reads and restores the request body, best-effort. A read
// failure yields an empty capture and must never fail the request itself.
func captureBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBody))
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))
	return string(data)
}

func pathParams(c *gin.Context) map[string]string {
	if len(c.Params) == 0 {
		return nil
	}
	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}
	return params
}
