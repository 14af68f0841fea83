// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import "errors"

var ErrInvalidName = errors.New("first and last name must be at most 30 characters")
