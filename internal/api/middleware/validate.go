package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/bancaplus/backoffice/internal/api/metrics"
	"github.com/bancaplus/backoffice/internal/api/response"
	"github.com/bancaplus/backoffice/internal/i18n"
)

// sourceTags are checked in order to decide where a field is read from.
var sourceTags = []struct {
	tag      string
	location string
}{
	{"param", response.LocationParams},
	{"query", response.LocationQuery},
	{"header", response.LocationHeader},
	{"json", response.LocationBody},
}

// NewValidator returns a validator that reports fields by their wire name
// instead of the Go field name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _ := wireName(sf)
		return name
	})
	return v
}

func wireName(sf reflect.StructField) (name, location string) {
	for _, s := range sourceTags {
		raw, ok := sf.Tag.Lookup(s.tag)
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(raw, ",")
		if name == "-" || name == "" {
			continue
		}
		return name, s.location
	}
	return sf.Name, response.LocationBody
}

type payloadShape struct {
	locations  map[string]string
	hasQuery   bool
	hasHeaders bool
}

func shapeOf(t reflect.Type) payloadShape {
	shape := payloadShape{locations: map[string]string{}}
	if t.Kind() != reflect.Struct {
		return shape
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		_, location := wireName(sf)
		shape.locations[sf.Name] = location
		switch location {
		case response.LocationQuery:
			shape.hasQuery = true
		case response.LocationHeader:
			shape.hasHeaders = true
		}
	}
	return shape
}

// Validate binds the request into a T, checks every rule declared on it and
// stores the payload for the handler. Violations are answered with a 400
// envelope whose message is the first violation's; a failure to evaluate the
// rules is returned to the error handler. Rules are checked with the
// bundle's own validator so messages always translate.
func Validate[T any](bundle *i18n.Bundle) echo.MiddlewareFunc {
	v := bundle.Validator()
	shape := shapeOf(reflect.TypeOf((*T)(nil)).Elem())
	binder := &echo.DefaultBinder{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			payload := new(T)

			if err := bind(binder, c, payload, shape); err != nil {
				var he *echo.HTTPError
				if !errors.As(err, &he) {
					return fmt.Errorf("bind payload: %w", err)
				}
				metrics.ValidationRejectionsTotal.WithLabelValues(c.Path()).Inc()
				return c.JSON(he.Code, response.Envelope{
					ClientErrorMessage: bundle.Message(c.Request().Header.Get(i18n.HeaderAcceptLanguage), i18n.KeyInvalidPayload),
					DebugErrorMessage:  fmt.Sprintf("%v", he.Message),
				})
			}

			err := v.StructCtx(c.Request().Context(), payload)
			if err == nil {
				c.Set(ctxPayload, payload)
				return next(c)
			}

			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return fmt.Errorf("validate payload: %w", err)
			}

			trans := bundle.For(c.Request().Header.Get(i18n.HeaderAcceptLanguage))
			fields := make([]response.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				location, ok := shape.locations[fe.StructField()]
				if !ok {
					location = response.LocationBody
				}
				fields = append(fields, response.FieldError{
					Msg:      fe.Translate(trans),
					Param:    fe.Field(),
					Location: location,
				})
			}

			metrics.ValidationRejectionsTotal.WithLabelValues(c.Path()).Inc()
			return c.JSON(http.StatusBadRequest, response.Envelope{
				ClientErrorMessage:    fields[0].Msg,
				DebugErrorMessage:     verrs.Error(),
				InputValidationErrors: fields,
			})
		}
	}
}

func bind(b *echo.DefaultBinder, c echo.Context, payload any, shape payloadShape) error {
	if err := b.BindPathParams(c, payload); err != nil {
		return err
	}
	if shape.hasQuery {
		if err := b.BindQueryParams(c, payload); err != nil {
			return err
		}
	}
	if shape.hasHeaders {
		if err := b.BindHeaders(c, payload); err != nil {
			return err
		}
	}
	return b.BindBody(c, payload)
}
