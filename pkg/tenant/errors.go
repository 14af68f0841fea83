// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

var (
	ErrNoTenant       = errors.New("no team loaded")
	ErrForbidden      = errors.New("only owners and admins can manage the team")
	ErrOwnerImmutable = errors.New("the owner cannot be changed or removed")
	ErrOwnerOnly      = errors.New("only the owner can transfer ownership")
	ErrRoleUnchanged  = errors.New("member already has this role")
	ErrInvalidRole    = errors.New("invalid role")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidName    = errors.New("team name is required and must be at most 100 characters")
	ErrInvalidWebsite = errors.New("website must be a valid URL")
	ErrInvalidEmail   = errors.New("a valid email address is required")
	ErrResendTooSoon  = errors.New("invitation was sent less than 24 hours ago")
)
