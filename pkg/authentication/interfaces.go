// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/types"
)

// ClientInterface is the part of the API client needed to log in, log out
// and bootstrap a session
type ClientInterface interface {
	Kind() httpclient.ClientKind
	CSRFToken() string

	AuthStart(ctx context.Context, body httpclient.StartAuthRequest, reqEditors ...httpclient.RequestEditorFn) (*httpclient.AuthResponse, error)
	AuthConfirmCode(ctx context.Context, body httpclient.CodeConfirmRequest, reqEditors ...httpclient.RequestEditorFn) (*httpclient.AuthResponse, error)
	AuthProviderToken(ctx context.Context, body httpclient.ProviderTokenRequest, reqEditors ...httpclient.RequestEditorFn) (*httpclient.AuthResponse, error)
	AuthSessionStatus(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.SessionStatus, error)
	AuthLogout(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) error
	AuthProvidersList(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) ([]types.Provider, error)

	UserMeRetrieve(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.User, error)
	TenantMeRetrieve(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.Tenant, error)
}

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken checks a raw ID token issued to this console's client id
	// and returns the identity it asserts
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}
