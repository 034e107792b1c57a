// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/version"
)

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/status", a.alive)
	r.Get("/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version}, a.logger)
}

// ready reports 503 until the database answers a ping.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Warnf("readiness check failed: %v", err)
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 0)
		types.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable", Version: version.Version}, a.logger)
		return
	}

	_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 1)
	types.WriteJSON(w, http.StatusOK, Status{Status: "ready", Version: version.Version}, a.logger)
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
