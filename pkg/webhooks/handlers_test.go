// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestAPI_CRMEvent(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "uninstall event",
			body: `{"type": "UNINSTALL", "location_id": "loc-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().HandleUninstall(gomock.Any(), "loc-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unhandled event type is acknowledged",
			body:           `{"type": "INSTALL", "location_id": "loc-1"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           `{`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"type": "UNINSTALL", "location_id": "loc-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().HandleUninstall(gomock.Any(), "loc-1").
					Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			mux := chi.NewMux()
			NewAPI(service).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/crm", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
