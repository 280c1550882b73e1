package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware writes one access log entry per request
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// Let echo write the response so the logged status is the real one
				c.Error(err)
			}

			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path += "?" + req.URL.RawQuery
			}

			logger.LogHTTPRequest(HTTPRequestLog{
				Method:    req.Method,
				Path:      path,
				ClientIP:  c.RealIP(),
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				BytesIn:   req.ContentLength,
				BytesOut:  c.Response().Size,
				Err:       err,
			})

			return nil
		}
	}
}
