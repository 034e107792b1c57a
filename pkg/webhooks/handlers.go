// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
)

type API struct {
	service ServiceInterface
	secret  []byte
	logger  logging.LoggerInterface
}

// NewAPI exposes the registration webhook. With an empty secret every call is refused.
func NewAPI(service ServiceInterface, secret string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		secret:  []byte(secret),
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/webhooks/registration", a.registration)
}

func (a *API) authorized(r *http.Request) bool {
	if len(a.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), a.secret) == 1
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(r) {
		a.logger.Security().AuthnFailure("invalid webhook secret")
		types.WriteJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized", Message: "Invalid webhook secret"}, a.logger)
		return
	}

	var reg Registration
	if err := types.DecodeJSON(w, r, &reg); err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	p, created, err := a.service.HandleRegistration(r.Context(), reg)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	types.WriteJSON(w, code, p, a.logger)
}
