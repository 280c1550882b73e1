package health

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/internal/pkg/constants"
	"github.com/piresc/ridermap/internal/pkg/database"
	"github.com/piresc/ridermap/internal/pkg/logger"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	probeTTL = 30 * time.Second
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// RedisHealthChecker checks that the dataset cache accepts writes and serves
// them back, not only that the connection answers PING
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth round-trips a short-lived probe key
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return fmt.Errorf("redis client not configured")
	}

	token := []byte(strconv.FormatInt(time.Now().UnixNano(), 10))
	if err := r.client.Set(ctx, constants.KeyHealthProbe, token, probeTTL); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	got, err := r.client.GetBytes(ctx, constants.KeyHealthProbe)
	if err != nil {
		return fmt.Errorf("cache read failed: %w", err)
	}
	if !bytes.Equal(got, token) {
		return fmt.Errorf("cache returned a stale probe value")
	}
	return nil
}

type namedChecker struct {
	name    string
	checker HealthChecker
}

// HealthService runs dependency checks in registration order
type HealthService struct {
	checkers []namedChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service. zapLogger may be nil.
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return &HealthService{logger: zapLogger}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status    string  `json:"status"`
	LatencyMs float64 `json:"latency_ms"`
	Error     string  `json:"error,omitempty"`
}

// CheckAllHealth runs every registered check. One failure marks the service unhealthy.
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       statusHealthy,
		Timestamp:    time.Now().UTC(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	for _, nc := range h.checkers {
		start := time.Now()
		err := nc.checker.CheckHealth(ctx)
		info := DependencyInfo{
			Status:    statusHealthy,
			LatencyMs: float64(time.Since(start).Microseconds()) / 1000,
		}
		if err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", nc.name),
				logger.Err(err))
			info.Status = statusUnhealthy
			info.Error = err.Error()
			response.Status = statusUnhealthy
		}
		response.Dependencies[nc.name] = info
	}

	return response
}

// RegisterEnhancedHealthEndpoints registers /health/detailed, /health/ready and /health/live
func RegisterEnhancedHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	healthGroup := e.Group("/health")

	check := func(c echo.Context, timeout time.Duration) HealthResponse {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		response := healthService.CheckAllHealth(ctx)
		response.Service = serviceName
		response.Version = version
		return response
	}

	healthGroup.GET("/detailed", func(c echo.Context) error {
		response := check(c, 5*time.Second)
		if response.Status == statusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})

	// Uploads cannot be served without the cache
	healthGroup.GET("/ready", func(c echo.Context) error {
		response := check(c, 3*time.Second)
		if response.Status == statusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
