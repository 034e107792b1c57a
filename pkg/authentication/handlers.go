// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/http/types"
	"github.com/canonical/chapter-service/internal/logging"
)

// Me is the resolved caller as seen by the guards.
type Me struct {
	UserID      string                     `json:"user_id"`
	Email       string                     `json:"email,omitempty"`
	AuthContext *authorization.AuthContext `json:"auth_context"`
}

type API struct {
	logger logging.LoggerInterface
}

// RegisterEndpoints expects RequireAuth to run first.
func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/me", a.me)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ac, ok := GetAuthContext(r.Context())
	if !ok {
		types.WriteJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized", Message: "Missing authentication"}, a.logger)
		return
	}

	userID, _ := GetUserID(r.Context())
	types.WriteJSON(w, http.StatusOK, Me{UserID: userID, Email: GetUserEmail(r.Context()), AuthContext: ac}, a.logger)
}

func NewAPI(logger logging.LoggerInterface) *API {
	a := new(API)

	a.logger = logger

	return a
}
