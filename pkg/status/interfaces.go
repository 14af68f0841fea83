// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/types"
)

// BackendInterface is the account API endpoint used as a liveness check, it
// needs no session
type BackendInterface interface {
	AuthProvidersList(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) ([]types.Provider, error)
}
