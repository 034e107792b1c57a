// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/pkg/authentication"
	"github.com/canonical/chapter-service/pkg/metrics"
	"github.com/canonical/chapter-service/pkg/participant"
	"github.com/canonical/chapter-service/pkg/status"
	"github.com/canonical/chapter-service/pkg/tenant"
	"github.com/canonical/chapter-service/pkg/webhooks"
)

const APIPrefix = "/api/v0"

// Services groups what the router exposes.
type Services struct {
	Tenants       tenant.ServiceInterface
	Participants  participant.ServiceInterface
	Registrations webhooks.ServiceInterface
	DB            status.PingerInterface
}

type Config struct {
	CORSAllowedOrigins []string
	WebhookSecret      string
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func NewRouter(
	cfg Config,
	services Services,
	auth *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	router.Route(APIPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(services.DB, tracer, monitor, logger).RegisterEndpoints(r)
		webhooks.NewAPI(services.Registrations, cfg.WebhookSecret, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth())

			authentication.NewAPI(logger).RegisterEndpoints(r)
			tenant.NewAPI(services.Tenants, tracer, monitor, logger).RegisterEndpoints(r)
			participant.NewAPI(services.Participants, tracer, monitor, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
