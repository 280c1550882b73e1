package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/internal/pkg/requestcontext"
)

const requestContextKey = "request_context"

// RequestContextMiddleware attaches a request context to the echo context and
// the request's context.Context, and echoes the request ID back to the client
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c, serviceName)

			c.Set(requestContextKey, reqCtx)
			c.SetRequest(c.Request().WithContext(requestcontext.With(c.Request().Context(), reqCtx)))
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)

			return next(c)
		}
	}
}

// GetRequestContext returns the request context set by RequestContextMiddleware
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	reqCtx, _ := c.Get(requestContextKey).(*requestcontext.RequestContext)
	return reqCtx
}
