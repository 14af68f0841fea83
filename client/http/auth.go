// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"context"

	"github.com/canonical/tenant-console/internal/types"
)

// AuthResponse is the allauth payload returned once a session is established
type AuthResponse struct {
	Status int            `json:"status,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
	User   map[string]any `json:"user,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// AuthStart requests a login code, or signs the identifier up. A 401 response
// means the code was sent and is surfaced as an *APIError like any other.
func (c *Client) AuthStart(ctx context.Context, body StartAuthRequest, reqEditors ...RequestEditorFn) (*AuthResponse, error) {
	req, err := NewAuthStartRequest(c.Server, c.kind, body)
	if err != nil {
		return nil, err
	}

	out := new(AuthResponse)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuthConfirmCode(ctx context.Context, body CodeConfirmRequest, reqEditors ...RequestEditorFn) (*AuthResponse, error) {
	req, err := NewAuthConfirmCodeRequest(c.Server, c.kind, body)
	if err != nil {
		return nil, err
	}

	out := new(AuthResponse)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuthProviderToken(ctx context.Context, body ProviderTokenRequest, reqEditors ...RequestEditorFn) (*AuthResponse, error) {
	req, err := NewAuthProviderTokenRequest(c.Server, c.kind, body)
	if err != nil {
		return nil, err
	}

	out := new(AuthResponse)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuthSessionStatus(ctx context.Context, reqEditors ...RequestEditorFn) (*types.SessionStatus, error) {
	req, err := NewAuthSessionStatusRequest(c.Server, c.kind)
	if err != nil {
		return nil, err
	}

	out := new(types.SessionStatus)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AuthLogout(ctx context.Context, reqEditors ...RequestEditorFn) error {
	req, err := NewAuthLogoutRequest(c.Server, c.kind)
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil, reqEditors...)
}

func (c *Client) AuthProvidersList(ctx context.Context, reqEditors ...RequestEditorFn) ([]types.Provider, error) {
	req, err := NewAuthProvidersListRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := new(struct {
		Providers []types.Provider `json:"providers"`
	})
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out.Providers, nil
}
