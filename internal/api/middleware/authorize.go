package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bancaplus/backoffice/internal/api/metrics"
	"github.com/bancaplus/backoffice/internal/api/response"
	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
	"github.com/bancaplus/backoffice/internal/i18n"
)

// Authorize enforces req on every request. Rejections are answered here with
// a localized envelope; system failures are returned untouched so the error
// handler can respond and audit them.
func Authorize(authz ports.Authorizer, bundle *i18n.Bundle, req domain.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()

			decision, err := authz.Authorize(r.Context(), r.Header.Get(echo.HeaderAuthorization), req)
			if err != nil {
				metrics.AuthorizationDecisionsTotal.WithLabelValues("error").Inc()
				return err
			}

			if !decision.Allowed() {
				metrics.AuthorizationDecisionsTotal.WithLabelValues(decision.Reason.String()).Inc()
				status, key := response.Rejection(decision.Reason)
				return c.JSON(status, response.Envelope{
					ClientErrorMessage: bundle.Message(r.Header.Get(i18n.HeaderAcceptLanguage), key),
					DebugErrorMessage:  decision.Reason.String(),
				})
			}

			metrics.AuthorizationDecisionsTotal.WithLabelValues("allowed").Inc()
			setAccount(c, decision.Account)
			return next(c)
		}
	}
}
