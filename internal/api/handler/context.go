package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/bancaplus/backoffice/internal/api/middleware"
	"github.com/bancaplus/backoffice/internal/api/response"
	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/i18n"
)

var (
	errNoAccount = errors.New("handler: no authorized account in context")
	errNoPayload = errors.New("handler: no validated payload in context")
)

// currentAccount returns the account attached by the Authorize middleware.
// Its absence means the route was registered without the gate, which is a
// programming error and surfaces as a 500.
func currentAccount(c echo.Context) (*domain.Account, error) {
	a, ok := middleware.AccountFrom(c)
	if !ok {
		return nil, errNoAccount
	}
	return a, nil
}

func payload[T any](c echo.Context) (*T, error) {
	p, ok := middleware.Payload[T](c)
	if !ok {
		return nil, errNoPayload
	}
	return p, nil
}

// reject writes a localized client error envelope.
func reject(c echo.Context, bundle *i18n.Bundle, status int, key string, cause error) error {
	return c.JSON(status, response.Envelope{
		ClientErrorMessage: bundle.Message(c.Request().Header.Get(i18n.HeaderAcceptLanguage), key),
		DebugErrorMessage:  cause.Error(),
	})
}
