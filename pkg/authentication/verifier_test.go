// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-console/internal/logging"
)

// payloadKeySet trusts every token and hands back its payload
type payloadKeySet struct{}

func (payloadKeySet) VerifySignature(_ context.Context, jwt string) ([]byte, error) {
	parts := strings.Split(jwt, ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed jwt")
	}
	return base64.RawURLEncoding.DecodeString(parts[1])
}

func unsignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, _ := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to marshal claims: %v", err)
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("signature"))
}

func TestIDTokenVerifier(t *testing.T) {
	now := time.Now()

	base := func() map[string]any {
		return map[string]any{
			"iss":            GoogleIssuer,
			"aud":            "console-client",
			"sub":            "1234567890",
			"email":          "ada@example.com",
			"email_verified": true,
			"name":           "Ada Lovelace",
			"iat":            now.Unix(),
			"exp":            now.Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name          string
		mutate        func(map[string]any)
		expectErr     bool
		expectedEmail string
	}{
		{
			name:          "valid token",
			mutate:        func(map[string]any) {},
			expectedEmail: "ada@example.com",
		},
		{
			name:      "issued for another client",
			mutate:    func(c map[string]any) { c["aud"] = "someone-else" },
			expectErr: true,
		},
		{
			name:      "wrong issuer",
			mutate:    func(c map[string]any) { c["iss"] = "https://evil.example.com" },
			expectErr: true,
		},
		{
			name:      "expired",
			mutate:    func(c map[string]any) { c["exp"] = now.Add(-time.Hour).Unix() },
			expectErr: true,
		},
		{
			name:      "unverified email",
			mutate:    func(c map[string]any) { c["email_verified"] = false },
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.IDTokenVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))

			claims := base()
			test.mutate(claims)

			oidcVerifier := oidc.NewVerifier(GoogleIssuer, payloadKeySet{}, &oidc.Config{ClientID: "console-client"})
			verifier := NewIDTokenVerifierDirect(oidcVerifier, mockTracer, mockMonitor, logging.NewNoopLogger())

			identity, err := verifier.VerifyToken(ctx, unsignedToken(t, claims))

			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error, got identity %v", identity)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.Principal() != test.expectedEmail {
				t.Errorf("expected principal %q, got %q", test.expectedEmail, identity.Principal())
			}
			if identity.FullName != "Ada Lovelace" {
				t.Errorf("expected name claim, got %q", identity.FullName)
			}
		})
	}
}

func TestNewIDTokenVerifierUsesProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockProvider.EXPECT().
		Verifier(&oidc.Config{ClientID: "console-client"}).
		Return(oidc.NewVerifier(GoogleIssuer, payloadKeySet{}, &oidc.Config{ClientID: "console-client"}))

	v := NewIDTokenVerifier(mockProvider, "console-client", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), logging.NewNoopLogger())
	if v.verifier == nil {
		t.Fatalf("expected verifier to be set")
	}
}

func TestNoopVerifier(t *testing.T) {
	v := NewNoopVerifier()

	if _, err := v.VerifyToken(context.Background(), "anything"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := v.VerifyToken(context.Background(), ""); err == nil {
		t.Errorf("expected error for empty token")
	}
}

func TestNewGoogleAuthenticatorWithoutClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v, err := NewGoogleAuthenticator(context.Background(), "", NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(*NoopVerifier); !ok {
		t.Errorf("expected noop verifier, got %T", v)
	}
}
