package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{name: "Created with map data", statusCode: http.StatusCreated, message: "Dataset uploaded", data: map[string]interface{}{"id": "abc"}},
		{name: "OK with nil data", statusCode: http.StatusOK, message: "Success", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, SuccessResponse(c, tt.statusCode, tt.message, tt.data))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			if tt.data == nil {
				assert.Nil(t, response.Data)
			}
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		send       func(echo.Context) error
		statusCode int
		message    string
	}{
		{name: "bad request", send: func(c echo.Context) error { return BadRequestResponse(c, "file is required") }, statusCode: http.StatusBadRequest, message: "file is required"},
		{name: "not found default", send: func(c echo.Context) error { return NotFoundResponse(c, "") }, statusCode: http.StatusNotFound, message: "Resource not found"},
		{name: "internal default", send: func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, statusCode: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}

func TestErrorResponseWithDetails(t *testing.T) {
	c, rec := newTestContext()

	details := map[string][]string{"missing_fields": {"LAT", "SLA"}}
	require.NoError(t, ErrorResponseWithDetails(c, http.StatusUnprocessableEntity, "missing required columns: LAT, SLA", details))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"missing required columns: LAT, SLA","code":422,"details":{"missing_fields":["LAT","SLA"]}}`, rec.Body.String())
}

func TestUnprocessableEntityResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, UnprocessableEntityResponse(c, "file is empty", map[string]string{"kind": "decode_failure"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"file is empty","code":422,"details":{"kind":"decode_failure"}}`, rec.Body.String())
}

func TestTooManyRequestsResponse(t *testing.T) {
	tests := []struct {
		retryAfter time.Duration
		want       string
	}{
		{retryAfter: 42 * time.Second, want: "42"},
		{retryAfter: 1500 * time.Millisecond, want: "2"},
		{retryAfter: 0, want: "1"},
	}

	for _, tt := range tests {
		c, rec := newTestContext()

		require.NoError(t, TooManyRequestsResponse(c, tt.retryAfter))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, tt.want, rec.Header().Get("Retry-After"))
	}
}
