// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
)

func TestGuardBootstrap(t *testing.T) {
	user := &types.User{PK: 1, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	tenant := &types.Tenant{PK: 7, Name: "Acme", Slug: "acme", Me: types.TenantUserSimple{PK: 1, Role: types.RoleOwner}}

	tests := []struct {
		name           string
		userErr        error
		tenantErr      error
		expectTenant   bool
		expectedStatus Status
	}{
		{
			name:           "both fetched",
			expectTenant:   true,
			expectedStatus: StatusAuthenticated,
		},
		{
			name:           "user unauthorized",
			userErr:        apiError(http.StatusUnauthorized),
			expectedStatus: StatusUnauthenticated,
		},
		{
			name:           "network failure",
			userErr:        errors.New("dial tcp: connection refused"),
			expectedStatus: StatusUnauthenticated,
		},
		{
			name:           "tenant fails after user",
			tenantErr:      apiError(http.StatusForbidden),
			expectTenant:   true,
			expectedStatus: StatusUnauthenticated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockClient := NewMockClientInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Guard.Bootstrap").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			if test.userErr != nil {
				mockClient.EXPECT().UserMeRetrieve(gomock.Any()).Return(nil, test.userErr)
			} else {
				mockClient.EXPECT().UserMeRetrieve(gomock.Any()).Return(user, nil)
			}

			if test.expectTenant {
				if test.tenantErr != nil {
					mockClient.EXPECT().TenantMeRetrieve(gomock.Any()).Return(nil, test.tenantErr)
				} else {
					mockClient.EXPECT().TenantMeRetrieve(gomock.Any()).Return(tenant, nil)
				}
			}

			sess := state.NewSession()
			guard := NewGuard(mockTracer, mockMonitor, mockLogger)

			status, err := guard.Bootstrap(ctx, mockClient, sess)

			if status != test.expectedStatus {
				t.Errorf("expected status %s, got %s", test.expectedStatus, status)
			}

			if test.expectedStatus == StatusAuthenticated {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				u, _ := sess.Users.User()
				if u.DisplayName() != "Ada Lovelace" {
					t.Errorf("expected display name to be derived, got %q", u.DisplayName())
				}
				if tn, ok := sess.Tenants.Tenant(); !ok || tn.Slug != "acme" {
					t.Errorf("expected tenant to be stored, got %v", tn)
				}
				return
			}

			if !errors.Is(err, ErrNotAuthenticated) {
				t.Errorf("expected %v, got %v", ErrNotAuthenticated, err)
			}
			if sess.Authenticated() {
				t.Errorf("stores must stay untouched on failure")
			}
			if _, ok := sess.Tenants.Tenant(); ok {
				t.Errorf("tenant store must stay untouched on failure")
			}
		})
	}
}

func TestGuardBootstrapKeepsPreviousStateOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockClient := NewMockClientInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx))
	mockClient.EXPECT().UserMeRetrieve(gomock.Any()).Return(&types.User{PK: 2, Email: "new@example.com"}, nil)
	mockClient.EXPECT().TenantMeRetrieve(gomock.Any()).Return(nil, apiError(http.StatusInternalServerError))

	sess := state.NewSession()
	sess.Users.SetUser(&types.User{PK: 1, Email: "old@example.com"})

	guard := NewGuard(mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

	if _, err := guard.Bootstrap(ctx, mockClient, sess); err == nil {
		t.Fatalf("expected error")
	}

	u, _ := sess.Users.User()
	if u.Email != "old@example.com" {
		t.Errorf("user store must not be partially updated, got %s", u.Email)
	}
}
