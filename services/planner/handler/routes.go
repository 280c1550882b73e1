package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/services/planner"
	httpHandler "github.com/piresc/ridermap/services/planner/handler/http"
)

// Handler combines all handlers for the planner service
type Handler struct {
	plannerHTTP *httpHandler.PlannerHandler
}

// NewHandler creates a new combined handler
func NewHandler(plannerUC planner.PlannerUC) *Handler {
	return &Handler{
		plannerHTTP: httpHandler.NewPlannerHandler(plannerUC),
	}
}

// RegisterRoutes registers all HTTP routes. uploadMiddleware wraps only the upload endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, uploadMiddleware ...echo.MiddlewareFunc) {
	datasets := e.Group("/api/v1/datasets")

	datasets.POST("", h.plannerHTTP.UploadDataset, uploadMiddleware...)
	datasets.GET("/:datasetID", h.plannerHTTP.GetDataset)
	datasets.DELETE("/:datasetID", h.plannerHTTP.InvalidateDataset)
	datasets.GET("/:datasetID/orders", h.plannerHTTP.FilterOrders)
	datasets.GET("/:datasetID/route", h.plannerHTTP.BuildRoute)
	datasets.GET("/:datasetID/map", h.plannerHTTP.BuildMapView)
}
