// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/tenant-console/pkg/state"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var sessionContextKey = contextKey{}

// WithSession returns a new context carrying the bootstrapped session
func WithSession(ctx context.Context, s *state.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// GetSession retrieves the session stored by the guard.
// Returns nil and false outside a protected handler.
func GetSession(ctx context.Context) (*state.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*state.Session)
	return s, ok && s != nil
}
