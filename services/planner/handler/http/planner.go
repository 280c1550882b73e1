package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/internal/pkg/ingest"
	"github.com/piresc/ridermap/internal/pkg/logger"
	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/piresc/ridermap/internal/utils"
	"github.com/piresc/ridermap/services/planner"
)

// Request parameters and messages
const (
	formFieldFile    = "file"
	queryOrderID     = "order_id"
	queryRider       = "rider"
	queryTimeCheck   = "time_check"
	queryZone        = "zone"
	paramDatasetID   = "datasetID"
	msgDatasetAbsent = "Dataset not found or expired, upload the file again"
)

// PlannerHandler handles HTTP requests for dataset upload and planning views
type PlannerHandler struct {
	plannerUC planner.PlannerUC
}

// NewPlannerHandler creates a new planner HTTP handler
func NewPlannerHandler(plannerUC planner.PlannerUC) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
	}
}

// UploadDataset handles a multipart upload of an order file
func (h *PlannerHandler) UploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return utils.BadRequestResponse(c, "A file is required in the 'file' form field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to open uploaded file: "+err.Error())
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read uploaded file: "+err.Error())
	}

	logger.FromContext(c.Request().Context()).Info("Received dataset upload",
		logger.Filename(fileHeader.Filename),
		logger.Int64("size", fileHeader.Size),
		logger.String("client_ip", c.RealIP()))

	dataset, err := h.plannerUC.UploadDataset(c.Request().Context(), fileHeader.Filename, content)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Dataset processed successfully", dataset.Summary())
}

// GetDataset returns the dataset summary
func (h *PlannerHandler) GetDataset(c echo.Context) error {
	datasetID := c.Param(paramDatasetID)
	if datasetID == "" {
		return utils.BadRequestResponse(c, "Dataset ID is required")
	}

	dataset, err := h.plannerUC.GetDataset(c.Request().Context(), datasetID)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dataset retrieved successfully", dataset.Summary())
}

// InvalidateDataset drops the cached dataset
func (h *PlannerHandler) InvalidateDataset(c echo.Context) error {
	datasetID := c.Param(paramDatasetID)
	if datasetID == "" {
		return utils.BadRequestResponse(c, "Dataset ID is required")
	}

	if err := h.plannerUC.InvalidateDataset(c.Request().Context(), datasetID); err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dataset invalidated", nil)
}

// FilterOrders returns the filtered orders, facet options and status counts
func (h *PlannerHandler) FilterOrders(c echo.Context) error {
	datasetID := c.Param(paramDatasetID)
	if datasetID == "" {
		return utils.BadRequestResponse(c, "Dataset ID is required")
	}

	result, err := h.plannerUC.FilterOrders(c.Request().Context(), datasetID, filterFromQuery(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", result)
}

// BuildRoute returns the directions link for the filtered orders
func (h *PlannerHandler) BuildRoute(c echo.Context) error {
	datasetID := c.Param(paramDatasetID)
	if datasetID == "" {
		return utils.BadRequestResponse(c, "Dataset ID is required")
	}

	link, err := h.plannerUC.BuildRoute(c.Request().Context(), datasetID, filterFromQuery(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	message := "Route built successfully"
	switch {
	case link.Message != "":
		message = link.Message
	case link.Warning != "":
		message = link.Warning
	}
	return utils.SuccessResponse(c, http.StatusOK, message, link)
}

// BuildMapView returns the markers for the filtered orders
func (h *PlannerHandler) BuildMapView(c echo.Context) error {
	datasetID := c.Param(paramDatasetID)
	if datasetID == "" {
		return utils.BadRequestResponse(c, "Dataset ID is required")
	}

	view, err := h.plannerUC.BuildMapView(c.Request().Context(), datasetID, filterFromQuery(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Map view built successfully", view)
}

func filterFromQuery(c echo.Context) models.OrderFilter {
	query := c.QueryParams()
	return models.OrderFilter{
		OrderIDs:   query[queryOrderID],
		Riders:     query[queryRider],
		TimeChecks: query[queryTimeCheck],
		Zones:      query[queryZone],
	}
}

// errorResponse maps ingestion and lookup failures to HTTP statuses
func (h *PlannerHandler) errorResponse(c echo.Context, err error) error {
	var schemaErr *ingest.SchemaError
	var decodeErr *ingest.DecodeError

	switch {
	case errors.Is(err, planner.ErrDatasetNotFound):
		return utils.NotFoundResponse(c, msgDatasetAbsent)
	case errors.As(err, &schemaErr):
		return utils.UnprocessableEntityResponse(c, schemaErr.Error(),
			map[string]interface{}{"missing_fields": schemaErr.MissingFields})
	case errors.As(err, &decodeErr):
		status := http.StatusUnprocessableEntity
		if decodeErr.Kind == ingest.KindUnsupportedFormat {
			status = http.StatusUnsupportedMediaType
		}
		return utils.ErrorResponseWithDetails(c, status, decodeErr.Error(),
			map[string]interface{}{"kind": decodeErr.Kind})
	default:
		logger.FromContext(c.Request().Context()).Error("Planner request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
