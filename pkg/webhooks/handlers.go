// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/pkg/login"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/login", a.handleLogin)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := a.service.HandleLogin(r.Context(), payload.Identity.ID, payload.Method)
	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if errors.Is(err, login.ErrLoginTypeNotAllowed) {
		a.rejectFlow(w, err)
		return
	}

	a.logger.Errorf("login hook failed for identity %s: %v", payload.Identity.ID, err)
	http.Error(w, "login hook failed", http.StatusInternalServerError)
}

// rejectFlow answers with the error shape Kratos interprets as a
// validation failure, aborting the login flow.
func (a *API) rejectFlow(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)

	response := HookError{
		Messages: []HookErrorMessage{
			{
				Messages: []HookErrorDetail{
					{
						ID:   4000001,
						Text: err.Error(),
						Type: "error",
					},
				},
			},
		},
	}

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		a.logger.Errorf("failed to encode hook error response: %v", encodeErr)
	}
}
