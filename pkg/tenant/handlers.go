// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/tenants", a.handleList)
	r.Post("/tenants", a.handleCreate)
	r.Get("/tenants/{tenantID}", a.handleGet)
	r.Patch("/tenants/{tenantID}", a.handleUpdate)
	r.Delete("/tenants/{tenantID}", a.handleDelete)
	r.Get("/tenants/{tenantID}/settings", a.handleGetSettings)
	r.Patch("/tenants/{tenantID}/settings", a.handleUpdateSettings)
	r.Get("/tenants/{tenantID}/members", a.handleListMembers)
	r.Post("/tenants/{tenantID}/members", a.handleAssignRole)
	r.Delete("/tenants/{tenantID}/members/{assignmentID}", a.handleRevokeRole)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		types.WriteJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized", Message: "Missing authentication"}, a.logger)
	}
	return p, ok
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	tenants, err := a.service.ListTenants(r.Context(), p)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, tenants, a.logger)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in CreateTenantInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	t, err := a.service.CreateTenant(r.Context(), p, in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusCreated, t, a.logger)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	t, err := a.service.GetTenant(r.Context(), p, chi.URLParam(r, "tenantID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, t, a.logger)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in UpdateTenantInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	t, err := a.service.UpdateTenant(r.Context(), p, chi.URLParam(r, "tenantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, t, a.logger)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteTenant(r.Context(), p, chi.URLParam(r, "tenantID")); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	ts, err := a.service.GetSettings(r.Context(), p, chi.URLParam(r, "tenantID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, ts, a.logger)
}

func (a *API) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in SettingsInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	ts, err := a.service.UpdateSettings(r.Context(), p, chi.URLParam(r, "tenantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, ts, a.logger)
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListMembers(r.Context(), p, chi.URLParam(r, "tenantID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, members, a.logger)
}

func (a *API) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in AssignRoleInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	ra, err := a.service.AssignRole(r.Context(), p, chi.URLParam(r, "tenantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusCreated, ra, a.logger)
}

func (a *API) handleRevokeRole(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	err := a.service.RevokeRole(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "assignmentID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
