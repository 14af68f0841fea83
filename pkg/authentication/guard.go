// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/state"
)

type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Guard decides whether a protected area can be entered by fetching the
// current user and tenant. The session stores are only written when both
// requests succeed.
type Guard struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *Guard) Bootstrap(ctx context.Context, client ClientInterface, sess *state.Session) (Status, error) {
	ctx, span := g.tracer.Start(ctx, "authentication.Guard.Bootstrap")
	defer span.End()

	user, err := client.UserMeRetrieve(ctx)
	if err != nil {
		g.logger.Debugf("failed to fetch current user: %v", err)
		return StatusUnauthenticated, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	tenant, err := client.TenantMeRetrieve(ctx)
	if err != nil {
		g.logger.Debugf("failed to fetch current tenant: %v", err)
		return StatusUnauthenticated, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	sess.Users.SetUser(user)
	sess.Tenants.SetTenant(tenant)

	return StatusAuthenticated, nil
}

func NewGuard(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
