// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/pkg/login"
)

func TestAPI_HandleLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "allowed login returns 200",
			body: `{"identity": {"id": "id-1"}, "method": "oidc"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().HandleLogin(gomock.Any(), "id-1", "oidc").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "rejected password login returns 403",
			body: `{"identity": {"id": "id-1"}, "method": "password"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().HandleLogin(gomock.Any(), "id-1", "password").Return(login.ErrLoginTypeNotAllowed)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed body returns 400",
			body:           `not json`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if tt.expectedStatus != http.StatusForbidden {
				return
			}

			var hookErr HookError
			if err := json.NewDecoder(rr.Body).Decode(&hookErr); err != nil {
				t.Fatalf("failed to decode hook error: %v", err)
			}
			if len(hookErr.Messages) == 0 || len(hookErr.Messages[0].Messages) == 0 {
				t.Fatal("expected at least one hook error message")
			}
			if hookErr.Messages[0].Messages[0].Type != "error" {
				t.Errorf("expected message type error, got %q", hookErr.Messages[0].Messages[0].Type)
			}
		})
	}
}
