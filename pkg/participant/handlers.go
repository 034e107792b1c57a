// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package participant

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/tracing"
	domain "github.com/canonical/chapter-service/internal/types"
	"github.com/canonical/chapter-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/tenants/{tenantID}/participants", a.handleList)
	r.Post("/tenants/{tenantID}/participants", a.handleCreate)
	r.Get("/tenants/{tenantID}/participants/{participantID}", a.handleGet)
	r.Patch("/tenants/{tenantID}/participants/{participantID}", a.handleUpdate)
	r.Delete("/tenants/{tenantID}/participants/{participantID}", a.handleDelete)
	r.Put("/tenants/{tenantID}/participants/{participantID}/status", a.handleUpdateStatus)
	r.Post("/tenants/{tenantID}/participants/{participantID}/checkins", a.handleCheckIn)
	r.Get("/tenants/{tenantID}/checkins", a.handleListCheckIns)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		types.WriteJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized", Message: "Missing authentication"}, a.logger)
	}
	return p, ok
}

func queryInt(r *http.Request, key string) (int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(key+" must be an integer", nil)
	}

	return n, nil
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	filter := ListFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}

	var err error
	if filter.Page, err = queryInt(r, "page"); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}
	if filter.Size, err = queryInt(r, "size"); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	participants, err := a.service.ListParticipants(r.Context(), p, chi.URLParam(r, "tenantID"), filter)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, participants, a.logger)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in CreateInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	pt, err := a.service.CreateParticipant(r.Context(), p, chi.URLParam(r, "tenantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusCreated, pt, a.logger)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	pt, err := a.service.GetParticipant(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "participantID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, pt, a.logger)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in UpdateInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	pt, err := a.service.UpdateParticipant(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "participantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, pt, a.logger)
}

func (a *API) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in StatusInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	pt, err := a.service.UpdateStatus(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "participantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, pt, a.logger)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteParticipant(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "participantID")); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var in CheckInInput
	if err := types.DecodeJSON(w, r, &in); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	c, err := a.service.CheckIn(r.Context(), p, chi.URLParam(r, "tenantID"), chi.URLParam(r, "participantID"), in)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusCreated, c, a.logger)
}

func (a *API) handleListCheckIns(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	checkIns, err := a.service.ListCheckIns(r.Context(), p, chi.URLParam(r, "tenantID"), r.URL.Query().Get("date"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, checkIns, a.logger)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
