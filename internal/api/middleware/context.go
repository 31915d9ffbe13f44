package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

const (
	ctxAccount     = "account"
	ctxAccountID   = "account_id"
	ctxRole        = "role"
	ctxPayload     = "payload"
	ctxRequestBody = "request_body"
)

func setAccount(c echo.Context, a *domain.Account) {
	c.Set(ctxAccount, a)
	c.Set(ctxAccountID, a.ID)
	c.Set(ctxRole, a.Role)
}

// AccountFrom returns the account attached by the Authorize middleware.
func AccountFrom(c echo.Context) (*domain.Account, bool) {
	a, ok := c.Get(ctxAccount).(*domain.Account)
	return a, ok && a != nil
}

// Payload returns the request payload bound and validated by Validate[T].
func Payload[T any](c echo.Context) (*T, bool) {
	p, ok := c.Get(ctxPayload).(*T)
	return p, ok
}

// RequestBody returns the raw request body captured by CaptureBody.
func RequestBody(c echo.Context) ([]byte, bool) {
	b, ok := c.Get(ctxRequestBody).([]byte)
	return b, ok
}
