// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"context"

	"github.com/canonical/tenant-console/internal/types"
)

func (c *Client) TenantMeRetrieve(ctx context.Context, reqEditors ...RequestEditorFn) (*types.Tenant, error) {
	req, err := NewTenantMeRetrieveRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := new(types.Tenant)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantMeUpdate(ctx context.Context, body TenantRequest, reqEditors ...RequestEditorFn) (*types.Tenant, error) {
	req, err := NewTenantMeUpdateRequest(c.Server, body)
	if err != nil {
		return nil, err
	}

	out := new(types.Tenant)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantMePartialUpdate(ctx context.Context, body PatchedTenantRequest, reqEditors ...RequestEditorFn) (*types.Tenant, error) {
	req, err := NewTenantMePartialUpdateRequest(c.Server, body)
	if err != nil {
		return nil, err
	}

	out := new(types.Tenant)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

// TenantLogoRetrieve returns a 404 *APIError when the tenant has no logo
func (c *Client) TenantLogoRetrieve(ctx context.Context, reqEditors ...RequestEditorFn) (*types.TenantLogo, error) {
	req, err := NewTenantLogoRetrieveRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := new(types.TenantLogo)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantLogoCreate(ctx context.Context, image types.File, reqEditors ...RequestEditorFn) (*types.TenantLogo, error) {
	req, err := NewTenantLogoCreateRequest(c.Server, image)
	if err != nil {
		return nil, err
	}

	out := new(types.TenantLogo)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantLogoDestroy(ctx context.Context, reqEditors ...RequestEditorFn) error {
	req, err := NewTenantLogoDestroyRequest(c.Server)
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil, reqEditors...)
}

func (c *Client) TenantUsersList(ctx context.Context, reqEditors ...RequestEditorFn) ([]types.TenantUser, error) {
	req, err := NewTenantUsersListRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := make([]types.TenantUser, 0)
	if err := c.do(ctx, req, &out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantUsersRetrieve(ctx context.Context, id int64, reqEditors ...RequestEditorFn) (*types.TenantUser, error) {
	req, err := NewTenantUsersRetrieveRequest(c.Server, id)
	if err != nil {
		return nil, err
	}

	out := new(types.TenantUser)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantUsersUpdate(ctx context.Context, id int64, body TenantUserUpdateRequest, reqEditors ...RequestEditorFn) (*types.TenantUser, error) {
	req, err := NewTenantUsersUpdateRequest(c.Server, id, body)
	if err != nil {
		return nil, err
	}

	out := new(types.TenantUser)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantUsersPartialUpdate(ctx context.Context, id int64, body TenantUserUpdateRequest, reqEditors ...RequestEditorFn) (*types.TenantUser, error) {
	req, err := NewTenantUsersPartialUpdateRequest(c.Server, id, body)
	if err != nil {
		return nil, err
	}

	out := new(types.TenantUser)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TenantUsersDestroy(ctx context.Context, id int64, reqEditors ...RequestEditorFn) error {
	req, err := NewTenantUsersDestroyRequest(c.Server, id)
	if err != nil {
		return err
	}

	return c.do(ctx, req, nil, reqEditors...)
}

func (c *Client) InvitationsList(ctx context.Context, reqEditors ...RequestEditorFn) ([]types.Invitation, error) {
	req, err := NewInvitationsListRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := make([]types.Invitation, 0)
	if err := c.do(ctx, req, &out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InvitationsCreate(ctx context.Context, body InvitationRequest, reqEditors ...RequestEditorFn) (*types.Invitation, error) {
	req, err := NewInvitationsCreateRequest(c.Server, body)
	if err != nil {
		return nil, err
	}

	out := new(types.Invitation)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

// InvitationsResend returns the server acknowledgement, a 403 means the
// invitation was already sent within the last 24 hours.
func (c *Client) InvitationsResend(ctx context.Context, id int64, reqEditors ...RequestEditorFn) (string, error) {
	req, err := NewInvitationsResendRequest(c.Server, id)
	if err != nil {
		return "", err
	}

	out := new(struct {
		Detail string `json:"detail"`
	})
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return "", err
	}
	return out.Detail, nil
}
