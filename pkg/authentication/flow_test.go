// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func apiError(status int) error {
	return &httpclient.APIError{StatusCode: status}
}

func TestFlowStart(t *testing.T) {
	tests := []struct {
		name            string
		identifier      Identifier
		kind            httpclient.ClientKind
		csrf            string
		startErr        error
		expectStart     bool
		expectPrime     bool
		expectedOutcome Outcome
		expectedStep    Step
		expectedErr     error
	}{
		{
			name:            "401 means the code was sent",
			identifier:      Identifier{Email: "ada@example.com"},
			kind:            httpclient.ClientBrowser,
			csrf:            "token",
			startErr:        apiError(http.StatusUnauthorized),
			expectStart:     true,
			expectedOutcome: ChallengeIssued,
			expectedStep:    StepCodeLogin,
		},
		{
			name:            "2xx does not move to the code step",
			identifier:      Identifier{Email: "ada@example.com"},
			kind:            httpclient.ClientBrowser,
			csrf:            "token",
			expectStart:     true,
			expectedOutcome: Authenticated,
			expectedStep:    StepInitial,
		},
		{
			name:            "phone identifier",
			identifier:      Identifier{Phone: "+447700900123"},
			kind:            httpclient.ClientApp,
			startErr:        apiError(http.StatusUnauthorized),
			expectStart:     true,
			expectedOutcome: ChallengeIssued,
			expectedStep:    StepCodeLogin,
		},
		{
			name:            "browser without csrf cookie primes it first",
			identifier:      Identifier{Email: "ada@example.com"},
			kind:            httpclient.ClientBrowser,
			startErr:        apiError(http.StatusUnauthorized),
			expectStart:     true,
			expectPrime:     true,
			expectedOutcome: ChallengeIssued,
			expectedStep:    StepCodeLogin,
		},
		{
			name:         "server error",
			identifier:   Identifier{Email: "ada@example.com"},
			kind:         httpclient.ClientBrowser,
			csrf:         "token",
			startErr:     apiError(http.StatusInternalServerError),
			expectStart:  true,
			expectedStep: StepInitial,
			expectedErr:  ErrStartFailed,
		},
		{
			name:         "network error",
			identifier:   Identifier{Email: "ada@example.com"},
			kind:         httpclient.ClientApp,
			startErr:     errors.New("connection refused"),
			expectStart:  true,
			expectedStep: StepInitial,
			expectedErr:  ErrStartFailed,
		},
		{
			name:         "no identifier",
			identifier:   Identifier{},
			expectedStep: StepInitial,
			expectedErr:  ErrInvalidIdentifier,
		},
		{
			name:         "both identifiers",
			identifier:   Identifier{Email: "ada@example.com", Phone: "+447700900123"},
			expectedStep: StepInitial,
			expectedErr:  ErrInvalidIdentifier,
		},
		{
			name:         "malformed email",
			identifier:   Identifier{Email: "not-an-email"},
			expectedStep: StepInitial,
			expectedErr:  ErrInvalidIdentifier,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockClient := NewMockClientInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.Start").Return(ctx, trace.SpanFromContext(ctx))

			if test.expectStart {
				mockClient.EXPECT().Kind().Return(test.kind).AnyTimes()
				mockClient.EXPECT().CSRFToken().Return(test.csrf).AnyTimes()
				mockClient.EXPECT().
					AuthStart(gomock.Any(), httpclient.StartAuthRequest{Email: test.identifier.Email, Phone: test.identifier.Phone}).
					Return(nil, test.startErr)
			}

			if test.expectPrime {
				mockClient.EXPECT().AuthSessionStatus(gomock.Any()).Return(nil, apiError(http.StatusUnauthorized))
			}

			flow := NewFlow(mockClient, nil, mockTracer, mockMonitor, logging.NewNoopLogger())

			result, err := flow.Start(ctx, test.identifier)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.Outcome != test.expectedOutcome {
					t.Errorf("expected outcome %s, got %s", test.expectedOutcome, result.Outcome)
				}
			}

			if flow.Step() != test.expectedStep {
				t.Errorf("expected step %s, got %s", test.expectedStep, flow.Step())
			}
		})
	}
}

func TestFlowStartPrimeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockClient := NewMockClientInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockClient.EXPECT().Kind().Return(httpclient.ClientBrowser)
	mockClient.EXPECT().CSRFToken().Return("")

	gomock.InOrder(
		mockClient.EXPECT().AuthSessionStatus(gomock.Any()).Return(nil, errors.New("timeout")),
		mockClient.EXPECT().AuthStart(gomock.Any(), gomock.Any()).Return(nil, apiError(http.StatusUnauthorized)),
	)

	flow := NewFlow(mockClient, nil, mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

	if _, err := flow.Start(ctx, Identifier{Email: " ada@example.com "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flow.Identifier() != "ada@example.com" {
		t.Errorf("expected trimmed identifier, got %q", flow.Identifier())
	}
}

// startedFlow returns a flow already waiting for the code
func startedFlow(t *testing.T, ctrl *gomock.Controller, client *MockClientInterface, logger logging.LoggerInterface) *Flow {
	t.Helper()

	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()

	client.EXPECT().Kind().Return(httpclient.ClientApp).AnyTimes()
	client.EXPECT().AuthStart(gomock.Any(), gomock.Any()).Return(nil, apiError(http.StatusUnauthorized))

	flow := NewFlow(client, nil, mockTracer, NewMockMonitorInterface(ctrl), logger)
	if _, err := flow.Start(ctx, Identifier{Email: "ada@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return flow
}

func TestFlowConfirm(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		confirmErr   error
		expectCall   bool
		expectedErr  error
		expectedStep Step
	}{
		{
			name:         "valid code",
			code:         "ABC123",
			expectCall:   true,
			expectedStep: StepDone,
		},
		{
			name:         "code with whitespace",
			code:         " abc123\n",
			expectCall:   true,
			expectedStep: StepDone,
		},
		{
			name:         "rejected by the server stays on the code step",
			code:         "ABC123",
			confirmErr:   apiError(http.StatusBadRequest),
			expectCall:   true,
			expectedErr:  ErrConfirmFailed,
			expectedStep: StepCodeLogin,
		},
		{
			name:         "too short",
			code:         "ABC12",
			expectedErr:  ErrInvalidCode,
			expectedStep: StepCodeLogin,
		},
		{
			name:         "too long",
			code:         "ABC1234",
			expectedErr:  ErrInvalidCode,
			expectedStep: StepCodeLogin,
		},
		{
			name:         "punctuation",
			code:         "ABC-12",
			expectedErr:  ErrInvalidCode,
			expectedStep: StepCodeLogin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockClientInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			if test.expectCall {
				mockClient.EXPECT().
					AuthConfirmCode(gomock.Any(), httpclient.CodeConfirmRequest{Code: strings.TrimSpace(test.code)}).
					Return(nil, test.confirmErr)

				if test.confirmErr != nil {
					mockSecurity.EXPECT().AuthnFailure("ada@example.com", "code")
				} else {
					mockSecurity.EXPECT().AuthnSuccess("ada@example.com", "code")
				}
			}

			flow := startedFlow(t, ctrl, mockClient, mockLogger)

			err := flow.Confirm(context.Background(), test.code)

			if test.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}
			if flow.Step() != test.expectedStep {
				t.Errorf("expected step %s, got %s", test.expectedStep, flow.Step())
			}
		})
	}
}

func TestFlowConfirmRequiresCodeStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockClient := NewMockClientInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.Confirm").Return(ctx, trace.SpanFromContext(ctx))

	flow := NewFlow(mockClient, nil, mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

	if err := flow.Confirm(ctx, "ABC123"); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected %v, got %v", ErrInvalidStep, err)
	}
}

func TestFlowResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockClient := NewMockClientInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.Confirm").Return(ctx, trace.SpanFromContext(ctx))
	mockClient.EXPECT().AuthConfirmCode(gomock.Any(), httpclient.CodeConfirmRequest{Code: "ABC123"}).Return(&httpclient.AuthResponse{}, nil)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthnSuccess("ada@example.com", "code")

	flow := NewFlow(mockClient, nil, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
	flow.Resume("ada@example.com")

	if flow.Step() != StepCodeLogin {
		t.Fatalf("expected step %s, got %s", StepCodeLogin, flow.Step())
	}

	if err := flow.Confirm(ctx, "ABC123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if flow.Step() != StepDone {
		t.Errorf("expected step %s, got %s", StepDone, flow.Step())
	}
}

func TestFlowProviderLogin(t *testing.T) {
	cred := ProviderCredential{Provider: GoogleProvider, ClientID: "client-id", IDToken: "id-token"}
	expectedBody := httpclient.ProviderTokenRequest{
		Provider: "google",
		Process:  httpclient.ProcessLogin,
		Token:    map[string]string{"client_id": "client-id", "id_token": "id-token"},
	}

	tests := []struct {
		name         string
		cred         ProviderCredential
		verifyErr    error
		tokenErr     error
		expectVerify bool
		expectToken  bool
		expectedErr  error
		expectedStep Step
	}{
		{
			name:         "success",
			cred:         cred,
			expectVerify: true,
			expectToken:  true,
			expectedStep: StepDone,
		},
		{
			name:         "token rejected locally",
			cred:         cred,
			verifyErr:    errors.New("bad audience"),
			expectVerify: true,
			expectedErr:  ErrInvalidToken,
			expectedStep: StepInitial,
		},
		{
			name:         "token rejected by the server",
			cred:         cred,
			tokenErr:     apiError(http.StatusBadRequest),
			expectVerify: true,
			expectToken:  true,
			expectedErr:  ErrProviderFailed,
			expectedStep: StepInitial,
		},
		{
			name:         "missing token",
			cred:         ProviderCredential{Provider: GoogleProvider, ClientID: "client-id"},
			expectedErr:  ErrInvalidToken,
			expectedStep: StepInitial,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockClient := NewMockClientInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.ProviderLogin").Return(ctx, trace.SpanFromContext(ctx))

			if test.expectVerify {
				identity := &Identity{Subject: "123", Email: "ada@example.com", EmailVerified: true}
				if test.verifyErr != nil {
					identity = nil
				}
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "id-token").Return(identity, test.verifyErr)
			}

			if test.expectToken {
				mockClient.EXPECT().AuthProviderToken(gomock.Any(), expectedBody).Return(nil, test.tokenErr)
			}

			flow := NewFlow(mockClient, mockVerifier, mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

			err := flow.ProviderLogin(ctx, test.cred)

			if test.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}
			if flow.Step() != test.expectedStep {
				t.Errorf("expected step %s, got %s", test.expectedStep, flow.Step())
			}
		})
	}
}

func TestFlowLogout(t *testing.T) {
	tests := []struct {
		name        string
		logoutErr   error
		expectClear bool
		expectErr   bool
	}{
		{name: "no content", expectClear: true},
		{name: "401 after logout", logoutErr: apiError(http.StatusUnauthorized), expectClear: true},
		{name: "server error", logoutErr: apiError(http.StatusInternalServerError), expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockClient := NewMockClientInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.Logout").Return(ctx, trace.SpanFromContext(ctx))
			mockClient.EXPECT().AuthLogout(gomock.Any()).Return(test.logoutErr)

			sess := state.NewSession()
			sess.Users.SetUser(&types.User{PK: 1, Email: "ada@example.com"})
			sess.Tenants.SetTenant(&types.Tenant{PK: 1, Name: "Acme"})

			flow := NewFlow(mockClient, nil, mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

			err := flow.Logout(ctx, sess)

			if test.expectErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}
			if test.expectClear == sess.Authenticated() {
				t.Errorf("expected cleared session %v, got authenticated %v", test.expectClear, sess.Authenticated())
			}
		})
	}
}

func TestFlowProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockClient := NewMockClientInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Flow.Providers").Return(ctx, trace.SpanFromContext(ctx)).Times(2)

	gomock.InOrder(
		mockClient.EXPECT().AuthProvidersList(gomock.Any()).Return([]types.Provider{{Provider: "google", ClientID: "abc"}}, nil),
		mockClient.EXPECT().AuthProvidersList(gomock.Any()).Return(nil, errors.New("boom")),
	)

	flow := NewFlow(mockClient, nil, mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

	providers, err := flow.Providers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Provider != "google" {
		t.Errorf("unexpected providers %v", providers)
	}

	if _, err := flow.Providers(ctx); err == nil {
		t.Errorf("expected error")
	}
}

func TestIsUserError(t *testing.T) {
	if !IsUserError(ErrInvalidCode) || !IsUserError(ErrInvalidIdentifier) {
		t.Errorf("validation errors must be user errors")
	}
	if IsUserError(ErrStartFailed) {
		t.Errorf("server errors must not be user errors")
	}
}
