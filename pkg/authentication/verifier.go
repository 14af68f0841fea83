// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
)

// Identity is the subset of ID token claims the console cares about
type Identity struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	FullName      string `json:"name"`
}

// Principal names the identity in security logs
func (i *Identity) Principal() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Subject
}

// IDTokenVerifier checks provider ID tokens before they are forwarded to the
// backend, so a forged or foreign token never leaves the console
type IDTokenVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *IDTokenVerifier) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.IDTokenVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		v.logger.Debugf("ID token verification failed: %v", err)
		return nil, err
	}

	identity := new(Identity)
	if err := token.Claims(identity); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	if identity.Email != "" && !identity.EmailVerified {
		v.logger.Security().AuthzFailure(identity.Email, "unverified_email")
		return nil, fmt.Errorf("email %s is not verified", identity.Email)
	}

	return identity, nil
}

// NewIDTokenVerifier builds a verifier bound to clientID, the audience every
// accepted token must carry
func NewIDTokenVerifier(
	provider ProviderInterface,
	clientID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *IDTokenVerifier {
	v := new(IDTokenVerifier)

	v.verifier = provider.Verifier(&oidc.Config{ClientID: clientID})
	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}

func NewIDTokenVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *IDTokenVerifier {
	return &IDTokenVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
