// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
)

// NewGoogleAuthenticator returns the verifier used for Google sign-in. Without
// a client id tokens are passed through to the backend unchecked.
func NewGoogleAuthenticator(
	ctx context.Context,
	clientID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if clientID == "" {
		logger.Info("Google client id not set, ID tokens are not verified locally")
		return NewNoopVerifier(), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", GoogleIssuer)
	provider, err := NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, err
	}

	logger.Info("Google ID token verification is enabled")
	return NewIDTokenVerifier(provider, clientID, tracer, monitor, logger), nil
}
