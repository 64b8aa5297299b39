// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type API struct {
	service ServiceInterface
}

func NewAPI(service ServiceInterface) *API {
	return &API{
		service: service,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/crm", a.crmEvent)
}

func (a *API) crmEvent(w http.ResponseWriter, r *http.Request) {
	var event CRMEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// events we do not handle are acknowledged so the CRM stops retrying
	if event.Type != eventTypeUninstall {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := a.service.HandleUninstall(r.Context(), event.LocationID); err != nil {
		http.Error(w, "Failed to process event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
