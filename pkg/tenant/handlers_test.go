// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpclient "github.com/canonical/tenant-console/client/http"
	httptypes "github.com/canonical/tenant-console/internal/http/types"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/upload"
)

func newTestRouter(ctrl *gomock.Controller, svc ServiceInterface, logger *MockLoggerInterface) *chi.Mux {
	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	resolve := func(*http.Request) (ServiceInterface, bool) {
		return svc, svc != nil
	}

	mux := chi.NewMux()
	NewAPI(resolve, tracer, NewMockMonitorInterface(ctrl), logger).RegisterEndpoints(mux)

	return mux
}

func decodeError(t *testing.T, body io.Reader) httptypes.ErrorResponse {
	t.Helper()

	var resp httptypes.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestAPI_SetRole(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		body            string
		setupMocks      func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "success",
			path: "/api/v0/team/members/3",
			body: `{"role":"admin"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetRole(gomock.Any(), int64(3), types.RoleAdmin).Return(&types.TenantUser{PK: 3, Role: types.RoleAdmin}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Member role updated",
		},
		{
			name:            "invalid id",
			path:            "/api/v0/team/members/abc",
			body:            `{"role":"admin"}`,
			setupMocks:      func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid id",
		},
		{
			name:            "invalid body",
			path:            "/api/v0/team/members/3",
			body:            "not-json",
			setupMocks:      func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "owner only",
			path: "/api/v0/team/members/3",
			body: `{"role":"owner"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetRole(gomock.Any(), int64(3), types.RoleOwner).Return(nil, ErrOwnerOnly)
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Only the owner can transfer ownership.",
		},
		{
			name: "unchanged",
			path: "/api/v0/team/members/3",
			body: `{"role":"user"}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetRole(gomock.Any(), int64(3), types.RoleUser).Return(nil, ErrRoleUnchanged)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "The member already has this role.",
		},
		{
			name: "backend failure is logged",
			path: "/api/v0/team/members/3",
			body: `{"role":"admin"}`,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().SetRole(gomock.Any(), int64(3), types.RoleAdmin).Return(nil, fmt.Errorf("failed to change member role: %w", &httpclient.APIError{StatusCode: http.StatusBadGateway}))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Something went wrong. Please try again.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)
			test.setupMocks(svc, logger)

			req := httptest.NewRequest(http.MethodPatch, test.path, strings.NewReader(test.body))
			w := httptest.NewRecorder()

			newTestRouter(ctrl, svc, logger).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, res.StatusCode)
			}

			if msg := decodeError(t, res.Body).Message; msg != test.expectedMessage {
				t.Errorf("expected message %q, got %q", test.expectedMessage, msg)
			}
		})
	}
}

func TestAPI_ListInvitations(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMocks func(*MockServiceInterface)
	}{
		{
			name:  "all",
			query: "",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListInvitations(gomock.Any()).Return([]types.Invitation{{Email: "a@example.com"}}, nil)
			},
		},
		{
			name:  "pending only",
			query: "?pending=true",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PendingInvitations(gomock.Any()).Return([]types.Invitation{{Email: "a@example.com"}}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/team/invitations"+test.query, nil)
			w := httptest.NewRecorder()

			newTestRouter(ctrl, svc, NewMockLoggerInterface(ctrl)).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
			}

			var body struct {
				Data []types.Invitation `json:"data"`
			}
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(body.Data) != 1 || body.Data[0].Email != "a@example.com" {
				t.Errorf("unexpected invitations %+v", body.Data)
			}
		})
	}
}

func TestAPI_Invite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Invite(gomock.Any(), "dave@example.com").Return(&types.Invitation{Email: "dave@example.com"}, nil)

	payload, _ := json.Marshal(invitationRequest{Email: "dave@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v0/team/invitations", bytes.NewReader(payload))
	w := httptest.NewRecorder()

	newTestRouter(ctrl, svc, NewMockLoggerInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestAPI_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Resend(gomock.Any(), int64(7)).Return("", ErrResendTooSoon)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/team/invitations/7/resend", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl, svc, NewMockLoggerInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
}

func TestAPI_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().RemoveMember(gomock.Any(), int64(1)).Return(ErrOwnerImmutable)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/team/members/1", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl, svc, NewMockLoggerInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestAPI_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v0/team", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl, nil, NewMockLoggerInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{err: ErrForbidden, status: http.StatusForbidden, message: "Only owners and admins can manage the team."},
		{err: fmt.Errorf("%w: 9", ErrMemberNotFound), status: http.StatusNotFound, message: "This member is no longer part of the team."},
		{err: ErrNoTenant, status: http.StatusUnauthorized, message: "Your session has expired. Please log in again."},
		{err: upload.ErrNotImage, status: http.StatusBadRequest, message: "Please select an image file"},
		{err: upload.ErrTooLarge, status: http.StatusBadRequest, message: "Image must be smaller than 5MB"},
		{err: &httpclient.APIError{StatusCode: http.StatusBadRequest, Detail: "Name taken"}, status: http.StatusBadRequest, message: "Name taken"},
		{err: errors.New("boom"), status: http.StatusInternalServerError, message: "Something went wrong. Please try again."},
	}

	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			status, message := StatusOf(test.err)
			if status != test.status || message != test.message {
				t.Errorf("expected %d %q, got %d %q", test.status, test.message, status, message)
			}
		})
	}
}
