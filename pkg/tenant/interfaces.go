// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/types"
)

type ServiceInterface interface {
	Refresh(ctx context.Context) (*types.Tenant, error)
	Rename(ctx context.Context, name string) (*types.Tenant, error)
	SetWebsite(ctx context.Context, website string) (*types.Tenant, error)

	Logo(ctx context.Context) (*types.TenantLogo, error)
	UploadLogo(ctx context.Context, file types.File) (*string, error)
	RemoveLogo(ctx context.Context) error

	ListMembers(ctx context.Context) ([]types.TenantUser, error)
	CanEditRole(member types.TenantUser) bool
	RoleOptions() []types.Role
	SetRole(ctx context.Context, id int64, role types.Role) (*types.TenantUser, error)
	RemoveMember(ctx context.Context, id int64) error

	ListInvitations(ctx context.Context) ([]types.Invitation, error)
	PendingInvitations(ctx context.Context) ([]types.Invitation, error)
	Invite(ctx context.Context, email string) (*types.Invitation, error)
	Resend(ctx context.Context, id int64) (string, error)
}

type ClientInterface interface {
	TenantMeRetrieve(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.Tenant, error)
	TenantMeUpdate(ctx context.Context, body httpclient.TenantRequest, reqEditors ...httpclient.RequestEditorFn) (*types.Tenant, error)
	TenantMePartialUpdate(ctx context.Context, body httpclient.PatchedTenantRequest, reqEditors ...httpclient.RequestEditorFn) (*types.Tenant, error)

	TenantLogoRetrieve(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) (*types.TenantLogo, error)
	TenantLogoCreate(ctx context.Context, image types.File, reqEditors ...httpclient.RequestEditorFn) (*types.TenantLogo, error)
	TenantLogoDestroy(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) error

	TenantUsersList(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) ([]types.TenantUser, error)
	TenantUsersPartialUpdate(ctx context.Context, id int64, body httpclient.TenantUserUpdateRequest, reqEditors ...httpclient.RequestEditorFn) (*types.TenantUser, error)
	TenantUsersDestroy(ctx context.Context, id int64, reqEditors ...httpclient.RequestEditorFn) error

	InvitationsList(ctx context.Context, reqEditors ...httpclient.RequestEditorFn) ([]types.Invitation, error)
	InvitationsCreate(ctx context.Context, body httpclient.InvitationRequest, reqEditors ...httpclient.RequestEditorFn) (*types.Invitation, error)
	InvitationsResend(ctx context.Context, id int64, reqEditors ...httpclient.RequestEditorFn) (string, error)
}

type GateInterface interface {
	Validate(types.File) error
}
