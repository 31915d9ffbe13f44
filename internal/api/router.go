package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bancaplus/backoffice/docs"
	"github.com/bancaplus/backoffice/internal/api/handler"
	"github.com/bancaplus/backoffice/internal/api/middleware"
	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
	"github.com/bancaplus/backoffice/internal/i18n"
)

const defaultBodyLimit = "1M"

// Dependencies are the collaborators the router wires into handlers and gates.
type Dependencies struct {
	Authorizer   ports.Authorizer
	Banks        ports.BankRepository
	ErrorRecords ports.ErrorRecordRepository
	Bundle       *i18n.Bundle
	Health       []handler.Dependency
	Log          zerolog.Logger

	// BodyLimit caps request bodies, e.g. "1M". Empty means defaultBodyLimit.
	BodyLimit string

	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// route declares one protected endpoint. validate is optional and runs
// before the authorization gate.
type route struct {
	method      string
	path        string
	validate    echo.MiddlewareFunc
	requirement domain.Requirement
	handler     echo.HandlerFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.ErrorRecords, deps.Bundle, deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	bodyLimit := deps.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:                 "backoffice",
		Subsystem:                 "http",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
	}))
	e.Use(middleware.SafeCall())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(middleware.CaptureBody())

	// --- Public endpoints (no gate) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected endpoints ---
	sessionHandler := handler.NewSessionHandler()
	bankHandler := handler.NewBankHandler(deps.Banks, deps.Bundle)

	routes := []route{
		{
			method:      http.MethodGet,
			path:        "/v1/session",
			requirement: domain.Authenticated(),
			handler:     sessionHandler.Get,
		},
		{
			method:      http.MethodPost,
			path:        "/v1/banks",
			validate:    middleware.Validate[handler.CreateBankRequest](deps.Bundle),
			requirement: domain.Require(domain.CapCreateBank),
			handler:     bankHandler.Create,
		},
		{
			method:      http.MethodDelete,
			path:        "/v1/banks/:id",
			validate:    middleware.Validate[handler.BankIDRequest](deps.Bundle),
			requirement: domain.Require(domain.CapDeleteBankAdmin),
			handler:     bankHandler.Delete,
		},
	}

	for _, r := range routes {
		mws := make([]echo.MiddlewareFunc, 0, 2)
		if r.validate != nil {
			mws = append(mws, r.validate)
		}
		mws = append(mws, middleware.Authorize(deps.Authorizer, deps.Bundle, r.requirement))
		e.Add(r.method, r.path, r.handler, mws...)
	}

	return e
}
