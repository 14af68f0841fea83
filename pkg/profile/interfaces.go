// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import (
	"context"
	"image"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/types"
)

type ServiceInterface interface {
	Me(ctx context.Context) (*types.User, error)
	UpdateName(ctx context.Context, firstName, lastName string) (*types.User, error)
	UploadAvatar(ctx context.Context, file types.File, crop *image.Rectangle) (*string, error)
	RemoveAvatar(ctx context.Context) error
}

type ClientInterface interface {
	UserMeRetrieve(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.User, error)
	UserMePartialUpdate(ctx context.Context, body httpclient.PatchedUserRequest, reqEditors ...httpclient.RequestEditorFn) (*types.User, error)
	ProfilePartialUpdate(ctx context.Context, avatar *types.File, reqEditors ...httpclient.RequestEditorFn) (*types.UserProfile, error)
}

type GateInterface interface {
	Validate(types.File) error
}
