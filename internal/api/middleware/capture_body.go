package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CaptureBody reads the request body once, keeps a copy for error records
// and hands an unread copy to the rest of the chain.
func CaptureBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return fmt.Errorf("read request body: %w", err)
			}
			_ = req.Body.Close()

			req.Body = io.NopCloser(bytes.NewReader(body))
			c.Set(ctxRequestBody, body)
			return next(c)
		}
	}
}
