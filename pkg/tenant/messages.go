// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"

	"github.com/canonical/tenant-console/internal/types"
)

// Message is the toast shown for a failed team operation
func Message(err error) string {
	switch {
	case errors.Is(err, ErrForbidden):
		return "Only owners and admins can manage the team."
	case errors.Is(err, ErrOwnerOnly):
		return "Only the owner can transfer ownership."
	case errors.Is(err, ErrOwnerImmutable):
		return "The owner cannot be changed or removed."
	case errors.Is(err, ErrRoleUnchanged):
		return "The member already has this role."
	case errors.Is(err, ErrInvalidRole):
		return "Please pick a valid role."
	case errors.Is(err, ErrMemberNotFound):
		return "This member is no longer part of the team."
	case errors.Is(err, ErrInvalidName):
		return "Team name is required and must be at most 100 characters."
	case errors.Is(err, ErrInvalidWebsite):
		return "Please enter a valid website URL."
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, ErrResendTooSoon):
		return "The invitation was sent less than 24 hours ago."
	case errors.Is(err, ErrNoTenant):
		return "Your session has expired. Please log in again."
	}
	return "Something went wrong. Please try again."
}

func roleOf(s string) types.Role {
	return types.Role(s)
}
