// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"context"

	"github.com/canonical/tenant-console/internal/types"
)

func (c *Client) UserMeRetrieve(ctx context.Context, reqEditors ...RequestEditorFn) (*types.User, error) {
	req, err := NewUserMeRetrieveRequest(c.Server)
	if err != nil {
		return nil, err
	}

	out := new(types.User)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserMeUpdate(ctx context.Context, body UserRequest, reqEditors ...RequestEditorFn) (*types.User, error) {
	req, err := NewUserMeUpdateRequest(c.Server, body)
	if err != nil {
		return nil, err
	}

	out := new(types.User)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserMePartialUpdate(ctx context.Context, body PatchedUserRequest, reqEditors ...RequestEditorFn) (*types.User, error) {
	req, err := NewUserMePartialUpdateRequest(c.Server, body)
	if err != nil {
		return nil, err
	}

	out := new(types.User)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProfileRetrieve(ctx context.Context, reqEditors ...RequestEditorFn) (*types.UserProfile, error) {
	req, err := NewProfileRetrieveRequest(c.Server, c.profilePath)
	if err != nil {
		return nil, err
	}

	out := new(types.UserProfile)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProfileUpdate(ctx context.Context, avatar *types.File, reqEditors ...RequestEditorFn) (*types.UserProfile, error) {
	req, err := NewProfileUpdateRequest(c.Server, c.profilePath, avatar)
	if err != nil {
		return nil, err
	}

	out := new(types.UserProfile)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfilePartialUpdate replaces the avatar, a nil avatar clears it
func (c *Client) ProfilePartialUpdate(ctx context.Context, avatar *types.File, reqEditors ...RequestEditorFn) (*types.UserProfile, error) {
	req, err := NewProfilePartialUpdateRequest(c.Server, c.profilePath, avatar)
	if err != nil {
		return nil, err
	}

	out := new(types.UserProfile)
	if err := c.do(ctx, req, out, reqEditors...); err != nil {
		return nil, err
	}
	return out, nil
}
