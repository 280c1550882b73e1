package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// multipartOverheadKB is allowed on top of the decoder cap for form framing
const multipartOverheadKB = 64

// UploadBodyLimit rejects request bodies larger than the decoder cap plus
// multipart overhead. A cap of zero or less disables the limit.
func UploadBodyLimit(maxBytes int64) echo.MiddlewareFunc {
	if maxBytes <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomw.BodyLimit(fmt.Sprintf("%dK", maxBytes/1024+multipartOverheadKB))
}
