// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/oidc-bridge/internal/logging"
	"github.com/canonical/oidc-bridge/internal/monitoring"
	"github.com/canonical/oidc-bridge/internal/tracing"
	"github.com/canonical/oidc-bridge/pkg/login"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func TestService_HandleLogin(t *testing.T) {
	tests := []struct {
		name       string
		identityID string
		method     string
		setupMocks func(*MockGuardInterface)
		wantErr    error
	}{
		{
			name:       "allowed login passes",
			identityID: "id-1",
			method:     "oidc",
			setupMocks: func(mockGuard *MockGuardInterface) {
				mockGuard.EXPECT().EnsurePasswordLoginOnlyForGuests(gomock.Any(), "oidc", "id-1").Return(nil)
			},
		},
		{
			name:       "guard rejection propagates",
			identityID: "id-1",
			method:     "password",
			setupMocks: func(mockGuard *MockGuardInterface) {
				mockGuard.EXPECT().EnsurePasswordLoginOnlyForGuests(gomock.Any(), "password", "id-1").Return(login.ErrLoginTypeNotAllowed)
			},
			wantErr: login.ErrLoginTypeNotAllowed,
		},
		{
			name:       "empty identity ID rejected without consulting guard",
			identityID: "",
			method:     "password",
			setupMocks: func(mockGuard *MockGuardInterface) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGuard := NewMockGuardInterface(ctrl)
			tt.setupMocks(mockGuard)

			service := NewService(
				mockGuard,
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor(),
				logging.NewNoopLogger(),
			)

			err := service.HandleLogin(t.Context(), tt.identityID, tt.method)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if tt.identityID == "" {
				if err == nil {
					t.Error("expected error for empty identity ID")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
