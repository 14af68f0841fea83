// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
)

// Service manages the caller's team. Role checks are done locally before any
// write so the user gets a precise error, the backend enforces them again.
type Service struct {
	client   ClientInterface
	session  *state.Session
	gate     GateInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	client ClientInterface,
	session *state.Session,
	gate GateInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		client:   client,
		session:  session,
		gate:     gate,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Refresh(ctx context.Context) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Refresh")
	defer span.End()

	tenant, err := s.client.TenantMeRetrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	s.session.Tenants.SetTenant(tenant)

	return tenant, nil
}

func (s *Service) Rename(ctx context.Context, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Rename")
	defer span.End()

	current, err := s.requireManager("rename")
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required,max=100"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	updated, err := s.client.TenantMeUpdate(ctx, httpclient.TenantRequest{Name: name, Website: current.Website})
	if err != nil {
		s.logger.Errorf("failed to rename team: %v", err)
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{Name: &updated.Name, Slug: &updated.Slug})
	s.audit("rename", updated.Slug)

	return s.stored()
}

func (s *Service) SetWebsite(ctx context.Context, website string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetWebsite")
	defer span.End()

	if _, err := s.requireManager("website"); err != nil {
		return nil, err
	}

	website = strings.TrimSpace(website)
	if err := s.validate.Var(website, "omitempty,http_url,max=200"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebsite, err)
	}

	updated, err := s.client.TenantMePartialUpdate(ctx, httpclient.PatchedTenantRequest{Website: &website})
	if err != nil {
		s.logger.Errorf("failed to update team website: %v", err)
		return nil, fmt.Errorf("failed to update team website: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{Website: &updated.Website})
	s.audit("website", updated.Slug)

	return s.stored()
}

// Logo returns the current logo, nil when the team has none
func (s *Service) Logo(ctx context.Context) (*types.TenantLogo, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Logo")
	defer span.End()

	logo, err := s.client.TenantLogoRetrieve(ctx)
	if httpclient.IsNotFound(err) {
		s.session.Tenants.UpdateTenant(state.TenantPatch{ClearLogo: true})
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch team logo: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{Logo: &logo.Image})

	return logo, nil
}

// UploadLogo gates the file before sending it, gate errors are returned
// unwrapped
func (s *Service) UploadLogo(ctx context.Context, file types.File) (*string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UploadLogo")
	defer span.End()

	current, err := s.requireManager("logo")
	if err != nil {
		return nil, err
	}

	if err := s.gate.Validate(file); err != nil {
		return nil, err
	}

	logo, err := s.client.TenantLogoCreate(ctx, file)
	if err != nil {
		s.logger.Errorf("failed to upload team logo: %v", err)
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{Logo: &logo.Image})
	s.audit("upload_logo", current.Slug)

	return &logo.Image, nil
}

func (s *Service) RemoveLogo(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveLogo")
	defer span.End()

	current, err := s.requireManager("logo")
	if err != nil {
		return err
	}

	// already gone on the server, only the local copy is stale
	if err := s.client.TenantLogoDestroy(ctx); err != nil && !httpclient.IsNotFound(err) {
		s.logger.Errorf("failed to remove team logo: %v", err)
		return fmt.Errorf("failed to remove team logo: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{ClearLogo: true})
	s.audit("remove_logo", current.Slug)

	return nil
}

func (s *Service) ListMembers(ctx context.Context) ([]types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	members, err := s.client.TenantUsersList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{TenantUsers: members})

	return members, nil
}

// CanEditRole reports whether the caller may change member's role. The owner
// row is never editable, whoever is asking.
func (s *Service) CanEditRole(member types.TenantUser) bool {
	if member.Role == types.RoleOwner {
		return false
	}
	return s.session.Role().Manager()
}

// RoleOptions lists the roles the caller may hand out, ownership can only be
// transferred by the owner
func (s *Service) RoleOptions() []types.Role {
	if s.session.Role() == types.RoleOwner {
		return []types.Role{types.RoleOwner, types.RoleAdmin, types.RoleUser}
	}
	return []types.Role{types.RoleAdmin, types.RoleUser}
}

func (s *Service) SetRole(ctx context.Context, id int64, role types.Role) (*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetRole")
	defer span.End()

	current, err := s.requireManager("member_role")
	if err != nil {
		return nil, err
	}

	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	member, err := s.member(ctx, current, id)
	if err != nil {
		return nil, err
	}

	switch {
	case member.Role == types.RoleOwner:
		return nil, ErrOwnerImmutable
	case member.Role == role:
		return nil, ErrRoleUnchanged
	case role == types.RoleOwner && current.Me.Role != types.RoleOwner:
		return nil, ErrOwnerOnly
	}

	updated, err := s.client.TenantUsersPartialUpdate(ctx, id, httpclient.TenantUserUpdateRequest{Role: role})
	if err != nil {
		s.logger.Errorf("failed to change role of member %d: %v", id, err)
		return nil, fmt.Errorf("failed to change member role: %w", err)
	}

	s.audit("set_role_"+string(role), memberResource(current, id))

	// ownership moved, the caller is now an admin and the member list changed
	if role == types.RoleOwner {
		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Errorf("failed to refresh team after ownership transfer: %v", err)
		}
		return updated, nil
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{TenantUsers: replaceMember(current.TenantUsers, *updated)})

	return updated, nil
}

func (s *Service) RemoveMember(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	current, err := s.requireManager("member")
	if err != nil {
		return err
	}

	member, err := s.member(ctx, current, id)
	if err != nil {
		return err
	}

	if member.Role == types.RoleOwner {
		return ErrOwnerImmutable
	}

	if err := s.client.TenantUsersDestroy(ctx, id); err != nil {
		s.logger.Errorf("failed to remove member %d: %v", id, err)
		return fmt.Errorf("failed to remove member: %w", err)
	}

	members := make([]types.TenantUser, 0, len(current.TenantUsers))
	for _, m := range current.TenantUsers {
		if m.PK != id {
			members = append(members, m)
		}
	}

	s.session.Tenants.UpdateTenant(state.TenantPatch{TenantUsers: members})
	s.audit("remove_member", memberResource(current, id))

	return nil
}

func (s *Service) ListInvitations(ctx context.Context) ([]types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListInvitations")
	defer span.End()

	invitations, err := s.client.InvitationsList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}

func (s *Service) PendingInvitations(ctx context.Context) ([]types.Invitation, error) {
	invitations, err := s.ListInvitations(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]types.Invitation, 0, len(invitations))
	for _, i := range invitations {
		if i.Pending() {
			pending = append(pending, i)
		}
	}

	return pending, nil
}

func (s *Service) Invite(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Invite")
	defer span.End()

	current, err := s.requireManager("invitation")
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email,max=254"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}

	invitation, err := s.client.InvitationsCreate(ctx, httpclient.InvitationRequest{Email: email})
	if err != nil {
		s.logger.Errorf("failed to invite %s: %v", email, err)
		return nil, fmt.Errorf("failed to invite %s: %w", email, err)
	}

	s.audit("invite", current.Slug+"/"+email)

	return invitation, nil
}

// Resend sends the invitation email again. The server refuses with 403 when
// the last one went out less than a day ago.
func (s *Service) Resend(ctx context.Context, id int64) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Resend")
	defer span.End()

	current, err := s.requireManager("invitation")
	if err != nil {
		return "", err
	}

	detail, err := s.client.InvitationsResend(ctx, id)
	if httpclient.IsForbidden(err) {
		return "", ErrResendTooSoon
	}

	if err != nil {
		s.logger.Errorf("failed to resend invitation %d: %v", id, err)
		return "", fmt.Errorf("failed to resend invitation: %w", err)
	}

	s.audit("resend_invitation", current.Slug+"/invitations/"+strconv.FormatInt(id, 10))

	return detail, nil
}

// requireManager returns the stored team when the caller is an owner or an
// admin of it
func (s *Service) requireManager(resource string) (*types.Tenant, error) {
	current, ok := s.session.Tenants.Tenant()
	if !ok {
		return nil, ErrNoTenant
	}

	if !current.Me.Role.Manager() {
		s.logger.Security().AuthzFailure(s.principal(), current.Slug+"/"+resource)
		return nil, ErrForbidden
	}

	return current, nil
}

// member looks the member up in the stored team, fetching the list when it
// is not there
func (s *Service) member(ctx context.Context, current *types.Tenant, id int64) (types.TenantUser, error) {
	if m, ok := current.Member(id); ok {
		return m, nil
	}

	members, err := s.ListMembers(ctx)
	if err != nil {
		return types.TenantUser{}, err
	}

	current.TenantUsers = members
	if m, ok := current.Member(id); ok {
		return m, nil
	}

	return types.TenantUser{}, fmt.Errorf("%w: %d", ErrMemberNotFound, id)
}

func (s *Service) stored() (*types.Tenant, error) {
	t, ok := s.session.Tenants.Tenant()
	if !ok {
		return nil, ErrNoTenant
	}
	return t, nil
}

func (s *Service) principal() string {
	if u, ok := s.session.Users.User(); ok {
		return u.Email
	}
	return ""
}

func (s *Service) audit(action, resource string) {
	s.logger.Security().AdminAction(s.principal(), action, resource)
}

func memberResource(t *types.Tenant, id int64) string {
	return t.Slug + "/members/" + strconv.FormatInt(id, 10)
}

func replaceMember(members []types.TenantUser, updated types.TenantUser) []types.TenantUser {
	out := make([]types.TenantUser, len(members))
	for i, m := range members {
		if m.PK == updated.PK {
			m = updated
		}
		out[i] = m
	}
	return out
}
