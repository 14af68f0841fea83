// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/types"
	"github.com/canonical/tenant-console/pkg/state"
	"github.com/canonical/tenant-console/pkg/upload"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func apiError(status int) error {
	return &httpclient.APIError{StatusCode: status}
}

func strPtr(s string) *string {
	return &s
}

func members() []types.TenantUser {
	return []types.TenantUser{
		{PK: 1, Role: types.RoleOwner, Email: "ada@example.com", FirstName: "Ada"},
		{PK: 2, Role: types.RoleAdmin, Email: "bob@example.com", FirstName: "Bob"},
		{PK: 3, Role: types.RoleUser, Email: "carol@example.com", FirstName: "Carol"},
	}
}

// sessionAs seeds a session where the caller is the member with pk me
func sessionAs(me int64) *state.Session {
	m := members()
	caller := m[me-1]

	sess := state.NewSession()
	sess.Users.SetUser(&types.User{PK: me, Email: caller.Email})
	sess.Tenants.SetTenant(&types.Tenant{
		PK:          10,
		Name:        "Acme",
		Slug:        "acme",
		Website:     "https://acme.example.com",
		Logo:        strPtr("https://cdn.example.com/logo.png"),
		TenantUsers: m,
		Me:          types.TenantUserSimple{PK: me, Role: caller.Role},
	})

	return sess
}

type fixture struct {
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
	client   *MockClientInterface
	gate     *MockGateInterface
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
		client:   NewMockClientInterface(ctrl),
		gate:     NewMockGateInterface(ctrl),
	}

	ctx := context.Background()
	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	f.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Security().Return(f.security).AnyTimes()
	f.security.EXPECT().AdminAction(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func (f *fixture) service(sess *state.Session) *Service {
	return NewService(f.client, sess, f.gate, f.tracer, f.monitor, f.logger)
}

func TestService_Rename(t *testing.T) {
	tests := []struct {
		name        string
		caller      int64
		newName     string
		setupMocks  func(*fixture)
		expectedErr error
		expected    string
	}{
		{
			name:    "Admin renames, website is kept",
			caller:  2,
			newName: " Acme Labs ",
			setupMocks: func(f *fixture) {
				f.client.EXPECT().
					TenantMeUpdate(gomock.Any(), httpclient.TenantRequest{Name: "Acme Labs", Website: "https://acme.example.com"}).
					Return(&types.Tenant{PK: 10, Name: "Acme Labs", Slug: "acme-labs"}, nil)
			},
			expected: "Acme Labs",
		},
		{
			name:    "User role is refused locally",
			caller:  3,
			newName: "Acme Labs",
			setupMocks: func(f *fixture) {
				f.security.EXPECT().AuthzFailure("carol@example.com", "acme/rename")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:        "Empty name",
			caller:      1,
			newName:     "   ",
			setupMocks:  func(*fixture) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:        "Name too long",
			caller:      1,
			newName:     strings.Repeat("x", 101),
			setupMocks:  func(*fixture) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:    "Server error leaves the store alone",
			caller:  1,
			newName: "Acme Labs",
			setupMocks: func(f *fixture) {
				f.client.EXPECT().TenantMeUpdate(gomock.Any(), gomock.Any()).Return(nil, apiError(http.StatusBadRequest))
			},
			expectedErr: &httpclient.APIError{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			sess := sessionAs(test.caller)
			tenant, err := f.service(sess).Rename(context.Background(), test.newName)

			if test.expectedErr != nil {
				var apiErr *httpclient.APIError
				if _, isAPI := test.expectedErr.(*httpclient.APIError); isAPI {
					if !errors.As(err, &apiErr) {
						t.Fatalf("expected api error, got %v", err)
					}
				} else if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}

				stored, _ := sess.Tenants.Tenant()
				if stored.Name != "Acme" || stored.Slug != "acme" {
					t.Errorf("store must be untouched, got %s/%s", stored.Name, stored.Slug)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant.Name != test.expected || tenant.Slug != "acme-labs" {
				t.Errorf("expected renamed tenant, got %s/%s", tenant.Name, tenant.Slug)
			}
			if tenant.Logo == nil || len(tenant.TenantUsers) != 3 {
				t.Errorf("rename must only touch name and slug, got %+v", tenant)
			}
		})
	}
}

func TestService_SetWebsite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.client.EXPECT().
		TenantMePartialUpdate(gomock.Any(), httpclient.PatchedTenantRequest{Website: strPtr("https://acme.dev")}).
		Return(&types.Tenant{PK: 10, Name: "Acme", Slug: "acme", Website: "https://acme.dev"}, nil)

	sess := sessionAs(1)
	svc := f.service(sess)

	tenant, err := svc.SetWebsite(context.Background(), "https://acme.dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.Website != "https://acme.dev" {
		t.Errorf("expected website to be stored, got %s", tenant.Website)
	}

	if _, err := svc.SetWebsite(context.Background(), "not a url"); !errors.Is(err, ErrInvalidWebsite) {
		t.Errorf("expected %v, got %v", ErrInvalidWebsite, err)
	}
}

func TestService_SetRole(t *testing.T) {
	tests := []struct {
		name         string
		caller       int64
		target       int64
		role         types.Role
		setupMocks   func(*fixture)
		expectedErr  error
		expectedRole types.Role
	}{
		{
			name:        "Owner row is never editable",
			caller:      1,
			target:      1,
			role:        types.RoleAdmin,
			setupMocks:  func(*fixture) {},
			expectedErr: ErrOwnerImmutable,
		},
		{
			name:        "Owner row is not editable by admins either",
			caller:      2,
			target:      1,
			role:        types.RoleUser,
			setupMocks:  func(*fixture) {},
			expectedErr: ErrOwnerImmutable,
		},
		{
			name:        "Unchanged role",
			caller:      1,
			target:      3,
			role:        types.RoleUser,
			setupMocks:  func(*fixture) {},
			expectedErr: ErrRoleUnchanged,
		},
		{
			name:        "Admin cannot hand out ownership",
			caller:      2,
			target:      3,
			role:        types.RoleOwner,
			setupMocks:  func(*fixture) {},
			expectedErr: ErrOwnerOnly,
		},
		{
			name:        "Invalid role",
			caller:      1,
			target:      3,
			role:        types.Role("superuser"),
			setupMocks:  func(*fixture) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name:   "User cannot manage",
			caller: 3,
			target: 2,
			role:   types.RoleUser,
			setupMocks: func(f *fixture) {
				f.security.EXPECT().AuthzFailure("carol@example.com", "acme/member_role")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:   "Admin promotes user",
			caller: 2,
			target: 3,
			role:   types.RoleAdmin,
			setupMocks: func(f *fixture) {
				f.client.EXPECT().
					TenantUsersPartialUpdate(gomock.Any(), int64(3), httpclient.TenantUserUpdateRequest{Role: types.RoleAdmin}).
					Return(&types.TenantUser{PK: 3, Role: types.RoleAdmin, Email: "carol@example.com"}, nil)
			},
			expectedRole: types.RoleAdmin,
		},
		{
			name:   "Owner transfers ownership and the team is refreshed",
			caller: 1,
			target: 2,
			role:   types.RoleOwner,
			setupMocks: func(f *fixture) {
				transferred := members()
				transferred[0].Role = types.RoleAdmin
				transferred[1].Role = types.RoleOwner

				gomock.InOrder(
					f.client.EXPECT().
						TenantUsersPartialUpdate(gomock.Any(), int64(2), httpclient.TenantUserUpdateRequest{Role: types.RoleOwner}).
						Return(&types.TenantUser{PK: 2, Role: types.RoleOwner}, nil),
					f.client.EXPECT().TenantMeRetrieve(gomock.Any()).Return(&types.Tenant{
						PK:          10,
						Name:        "Acme",
						Slug:        "acme",
						TenantUsers: transferred,
						Me:          types.TenantUserSimple{PK: 1, Role: types.RoleAdmin},
					}, nil),
				)
			},
			expectedRole: types.RoleOwner,
		},
		{
			name:   "Unknown member is looked up on the server",
			caller: 1,
			target: 9,
			role:   types.RoleAdmin,
			setupMocks: func(f *fixture) {
				f.client.EXPECT().TenantUsersList(gomock.Any()).Return(members(), nil)
			},
			expectedErr: ErrMemberNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			sess := sessionAs(test.caller)
			member, err := f.service(sess).SetRole(context.Background(), test.target, test.role)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if member.Role != test.expectedRole {
				t.Errorf("expected role %s, got %s", test.expectedRole, member.Role)
			}

			stored, _ := sess.Tenants.Tenant()
			m, ok := stored.Member(test.target)
			if !ok || m.Role != test.expectedRole {
				t.Errorf("expected stored member role %s, got %+v", test.expectedRole, m)
			}
		})
	}
}

func TestService_OwnershipTransferDemotesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.client.EXPECT().TenantUsersPartialUpdate(gomock.Any(), int64(3), gomock.Any()).Return(&types.TenantUser{PK: 3, Role: types.RoleOwner}, nil)
	f.client.EXPECT().TenantMeRetrieve(gomock.Any()).Return(&types.Tenant{PK: 10, Slug: "acme", Me: types.TenantUserSimple{PK: 1, Role: types.RoleAdmin}}, nil)

	sess := sessionAs(1)
	svc := f.service(sess)

	if _, err := svc.SetRole(context.Background(), 3, types.RoleOwner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.Role() != types.RoleAdmin {
		t.Errorf("expected the previous owner to be admin, got %s", sess.Role())
	}

	options := svc.RoleOptions()
	for _, r := range options {
		if r == types.RoleOwner {
			t.Errorf("a non owner must not be offered the owner role")
		}
	}
}

func TestService_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.client.EXPECT().TenantUsersDestroy(gomock.Any(), int64(3)).Return(nil)

	sess := sessionAs(2)
	svc := f.service(sess)

	if err := svc.RemoveMember(context.Background(), 1); !errors.Is(err, ErrOwnerImmutable) {
		t.Fatalf("expected %v, got %v", ErrOwnerImmutable, err)
	}

	if err := svc.RemoveMember(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := sess.Tenants.Tenant()
	if _, ok := stored.Member(3); ok || len(stored.TenantUsers) != 2 {
		t.Errorf("expected member 3 to be removed, got %+v", stored.TenantUsers)
	}
}

func TestService_CanEditRoleAndRoleOptions(t *testing.T) {
	tests := []struct {
		caller   int64
		editable map[int64]bool
		options  int
	}{
		{caller: 1, editable: map[int64]bool{1: false, 2: true, 3: true}, options: 3},
		{caller: 2, editable: map[int64]bool{1: false, 2: true, 3: true}, options: 2},
		{caller: 3, editable: map[int64]bool{1: false, 2: false, 3: false}, options: 2},
	}

	for _, test := range tests {
		ctrl := gomock.NewController(t)
		svc := newFixture(ctrl).service(sessionAs(test.caller))

		for _, m := range members() {
			if got := svc.CanEditRole(m); got != test.editable[m.PK] {
				t.Errorf("caller %d: CanEditRole(%d) = %v, expected %v", test.caller, m.PK, got, test.editable[m.PK])
			}
		}

		if got := len(svc.RoleOptions()); got != test.options {
			t.Errorf("caller %d: expected %d role options, got %d", test.caller, test.options, got)
		}
		ctrl.Finish()
	}
}

func TestService_Logo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	gomock.InOrder(
		f.client.EXPECT().TenantLogoRetrieve(gomock.Any()).Return(&types.TenantLogo{Image: "https://cdn.example.com/v2.png"}, nil),
		f.client.EXPECT().TenantLogoRetrieve(gomock.Any()).Return(nil, apiError(http.StatusNotFound)),
		f.client.EXPECT().TenantLogoRetrieve(gomock.Any()).Return(nil, apiError(http.StatusInternalServerError)),
	)

	sess := sessionAs(3)
	svc := f.service(sess)

	logo, err := svc.Logo(context.Background())
	if err != nil || logo.Image != "https://cdn.example.com/v2.png" {
		t.Fatalf("expected logo, got %v %v", logo, err)
	}
	if stored, _ := sess.Tenants.Tenant(); *stored.Logo != "https://cdn.example.com/v2.png" {
		t.Errorf("expected logo in the shared store, got %s", *stored.Logo)
	}

	logo, err = svc.Logo(context.Background())
	if err != nil || logo != nil {
		t.Fatalf("expected no logo and no error, got %v %v", logo, err)
	}
	if stored, _ := sess.Tenants.Tenant(); stored.Logo != nil {
		t.Errorf("expected logo to be cleared, got %s", *stored.Logo)
	}

	if _, err := svc.Logo(context.Background()); err == nil {
		t.Errorf("expected error")
	}
}

func TestService_UploadLogo(t *testing.T) {
	file := types.File{Name: "logo.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}

	tests := []struct {
		name        string
		setupMocks  func(*fixture)
		expectedErr error
	}{
		{
			name: "Uploaded",
			setupMocks: func(f *fixture) {
				f.gate.EXPECT().Validate(file).Return(nil)
				f.client.EXPECT().TenantLogoCreate(gomock.Any(), file).Return(&types.TenantLogo{Image: "https://cdn.example.com/new.png", CreatedAt: time.Now()}, nil)
			},
		},
		{
			name: "Rejected by the gate",
			setupMocks: func(f *fixture) {
				f.gate.EXPECT().Validate(file).Return(upload.ErrTooLarge)
			},
			expectedErr: upload.ErrTooLarge,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			sess := sessionAs(1)
			url, err := f.service(sess).UploadLogo(context.Background(), file)
			stored, _ := sess.Tenants.Tenant()

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				if *stored.Logo != "https://cdn.example.com/logo.png" {
					t.Errorf("logo must be untouched, got %s", *stored.Logo)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *url != "https://cdn.example.com/new.png" || *stored.Logo != *url {
				t.Errorf("expected new logo, got %s stored %s", *url, *stored.Logo)
			}
		})
	}
}

func TestService_RemoveLogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	gomock.InOrder(
		f.client.EXPECT().TenantLogoDestroy(gomock.Any()).Return(apiError(http.StatusInternalServerError)),
		f.client.EXPECT().TenantLogoDestroy(gomock.Any()).Return(apiError(http.StatusNotFound)),
	)

	sess := sessionAs(1)
	svc := f.service(sess)

	if err := svc.RemoveLogo(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if stored, _ := sess.Tenants.Tenant(); stored.Logo == nil {
		t.Fatalf("logo must survive a failed removal")
	}

	if err := svc.RemoveLogo(context.Background()); err != nil {
		t.Fatalf("a missing logo counts as removed, got %v", err)
	}
	if stored, _ := sess.Tenants.Tenant(); stored.Logo != nil {
		t.Errorf("expected logo to be cleared")
	}
}

func TestService_Invitations(t *testing.T) {
	accepted := time.Now().Add(-time.Hour)
	yes, no := true, false
	pk := int64(5)

	list := []types.Invitation{
		{PK: &pk, Email: "pending@example.com"},
		{Email: "accepted@example.com", AcceptedAt: &accepted},
		{Email: "legacy-accepted@example.com", IsAccepted: &yes},
		{Email: "legacy-pending@example.com", IsAccepted: &no},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.client.EXPECT().InvitationsList(gomock.Any()).Return(list, nil).Times(2)

	svc := f.service(sessionAs(1))

	all, err := svc.ListInvitations(context.Background())
	if err != nil || len(all) != 4 {
		t.Fatalf("expected 4 invitations, got %d %v", len(all), err)
	}

	pending, err := svc.PendingInvitations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 || pending[0].Email != "pending@example.com" || pending[1].Email != "legacy-pending@example.com" {
		t.Errorf("unexpected pending invitations %+v", pending)
	}
}

func TestService_Invite(t *testing.T) {
	tests := []struct {
		name        string
		caller      int64
		email       string
		setupMocks  func(*fixture)
		expectedErr error
	}{
		{
			name:   "Invited",
			caller: 2,
			email:  "dave@example.com",
			setupMocks: func(f *fixture) {
				f.client.EXPECT().
					InvitationsCreate(gomock.Any(), httpclient.InvitationRequest{Email: "dave@example.com"}).
					Return(&types.Invitation{Email: "dave@example.com"}, nil)
			},
		},
		{
			name:        "Invalid email",
			caller:      1,
			email:       "dave",
			setupMocks:  func(*fixture) {},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:   "Users cannot invite",
			caller: 3,
			email:  "dave@example.com",
			setupMocks: func(f *fixture) {
				f.security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			invitation, err := f.service(sessionAs(test.caller)).Invite(context.Background(), test.email)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil || invitation.Email != test.email {
				t.Fatalf("expected invitation for %s, got %v %v", test.email, invitation, err)
			}
		})
	}
}

func TestService_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	gomock.InOrder(
		f.client.EXPECT().InvitationsResend(gomock.Any(), int64(5)).Return("Invitation resent", nil),
		f.client.EXPECT().InvitationsResend(gomock.Any(), int64(5)).Return("", apiError(http.StatusForbidden)),
	)

	svc := f.service(sessionAs(1))

	detail, err := svc.Resend(context.Background(), 5)
	if err != nil || detail != "Invitation resent" {
		t.Fatalf("expected resend, got %q %v", detail, err)
	}

	if _, err := svc.Resend(context.Background(), 5); !errors.Is(err, ErrResendTooSoon) {
		t.Errorf("expected %v, got %v", ErrResendTooSoon, err)
	}
}

func TestService_NoTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	svc := f.service(state.NewSession())

	if _, err := svc.Rename(context.Background(), "Acme"); !errors.Is(err, ErrNoTenant) {
		t.Errorf("expected %v, got %v", ErrNoTenant, err)
	}
}
