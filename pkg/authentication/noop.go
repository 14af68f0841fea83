// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier that accepts every non empty token,
// leaving the check to the backend.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("empty token")
	}
	return &Identity{}, nil
}
