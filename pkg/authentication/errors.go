// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrInvalidIdentifier = errors.New("exactly one valid email or phone number is required")
	ErrStartFailed       = errors.New("failed to start login")
	ErrInvalidCode       = errors.New("the code must be 6 letters or digits")
	ErrConfirmFailed     = errors.New("failed to confirm login code")
	ErrProviderFailed    = errors.New("failed to log in with provider")
	ErrInvalidStep       = errors.New("operation not allowed at this login step")
	ErrInvalidToken      = errors.New("invalid provider token")
)

// UserMessage is the generic text shown when a login step fails
const UserMessage = "Something went wrong. Please try again later."
