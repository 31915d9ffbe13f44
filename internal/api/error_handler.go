package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bancaplus/backoffice/internal/api/metrics"
	"github.com/bancaplus/backoffice/internal/api/middleware"
	"github.com/bancaplus/backoffice/internal/api/response"
	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
	"github.com/bancaplus/backoffice/internal/i18n"
)

const (
	notFoundMessage = "Not Found"
	recordTimeout   = 5 * time.Second
	emptyBody       = "{}"

	// ctxErrorHandled marks a request whose failure was already translated.
	// The request logger hands errors to the handler before they also bubble
	// up to echo, so the handler sees each failure twice.
	ctxErrorHandled = "error_handled"
)

type errorTranslator struct {
	records ports.ErrorRecordRepository
	bundle  *i18n.Bundle
	log     zerolog.Logger
	now     func() time.Time
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Answers unmatched routes with a plain 404.
//   - Answers client errors raised by echo (bind failures, body limits) with
//     an envelope and does not audit them.
//   - Answers everything else with a single 500 carrying only the debug
//     message, then persists an OPENED error record for it.
func NewHTTPErrorHandler(records ports.ErrorRecordRepository, bundle *i18n.Bundle, log zerolog.Logger) echo.HTTPErrorHandler {
	t := &errorTranslator{records: records, bundle: bundle, log: log, now: time.Now}
	return t.handle
}

func (t *errorTranslator) handle(err error, c echo.Context) {
	if c.Get(ctxErrorHandled) != nil {
		return
	}
	c.Set(ctxErrorHandled, true)

	if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		t.notFound(c)
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		t.clientError(he, c)
		return
	}

	metrics.UnhandledErrorsTotal.Inc()
	t.respond(err, c)
	t.record(err, c)

	t.log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
}

func (t *errorTranslator) notFound(c echo.Context) {
	if c.Response().Committed {
		return
	}
	_ = c.String(http.StatusNotFound, notFoundMessage)
}

func (t *errorTranslator) clientError(he *echo.HTTPError, c echo.Context) {
	if c.Response().Committed {
		return
	}
	_ = c.JSON(he.Code, response.Envelope{
		ClientErrorMessage: t.bundle.Message(c.Request().Header.Get(i18n.HeaderAcceptLanguage), i18n.KeyInvalidPayload),
		DebugErrorMessage:  fmt.Sprintf("%v", he.Message),
	})
}

// respond sends the 500 unless something was already written.
func (t *errorTranslator) respond(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(http.StatusInternalServerError)
		return
	}
	if werr := c.JSON(http.StatusInternalServerError, response.Internal(err)); werr != nil {
		t.log.Error().Err(werr).Msg("write error response")
	}
}

// record persists the audit entry. A persistence failure is logged and never
// replaces err.
func (t *errorTranslator) record(err error, c echo.Context) {
	stack, ok := middleware.StackOf(err)
	if !ok {
		stack = debug.Stack()
	}

	body := emptyBody
	if raw, ok := middleware.RequestBody(c); ok && len(raw) > 0 {
		body = string(raw)
	}

	rec := &domain.ErrorRecord{
		Message:   err.Error(),
		Stack:     string(stack),
		URL:       c.Request().URL.RequestURI(),
		Status:    domain.ErrorStatusOpened,
		Body:      body,
		CreatedAt: t.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), recordTimeout)
	defer cancel()

	if perr := t.records.Insert(ctx, rec); perr != nil {
		metrics.ErrorRecordsFailedTotal.Inc()
		t.log.Error().
			Err(perr).
			AnErr("original", err).
			Str("path", c.Path()).
			Msg("persist error record")
	}
}
