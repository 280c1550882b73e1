package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey struct{}

// RequestContext carries per-request identity through handlers and use cases
type RequestContext struct {
	RequestID   string
	ServiceName string
	StartTime   time.Time
}

// New builds a request context, minting a request ID when none is given
func New(requestID, serviceName string) *RequestContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &RequestContext{
		RequestID:   requestID,
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

// FromEchoContext reuses an incoming X-Request-ID header or mints a new one
func FromEchoContext(c echo.Context, serviceName string) *RequestContext {
	return New(c.Request().Header.Get(echo.HeaderXRequestID), serviceName)
}

// Elapsed is the time since the request started
func (r *RequestContext) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}

// With stores the request context in ctx
func With(ctx context.Context, reqCtx *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, reqCtx)
}

// From returns the request context stored in ctx, if any
func From(ctx context.Context) (*RequestContext, bool) {
	if ctx == nil {
		return nil, false
	}
	reqCtx, ok := ctx.Value(contextKey{}).(*RequestContext)
	return reqCtx, ok && reqCtx != nil
}

// GetRequestID returns the request ID stored in ctx or ""
func GetRequestID(ctx context.Context) string {
	if reqCtx, ok := From(ctx); ok {
		return reqCtx.RequestID
	}
	return ""
}
