// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"strings"
	"time"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Manager reports whether the role may administer the team
func (r Role) Manager() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r Role) Label() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	}
	return string(r)
}

type UserProfile struct {
	Avatar *string `json:"avatar"`
}

type SimpleTenant struct {
	PK   int64  `json:"pk"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type TenantUserSimple struct {
	PK   int64 `json:"pk"`
	Role Role  `json:"role,omitempty"`
}

// User is the authenticated account as returned by the current user endpoint.
// FullName is never sent by the server, it is derived locally.
type User struct {
	PK         int64             `json:"pk"`
	Email      string            `json:"email"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Profile    UserProfile       `json:"profile"`
	Tenant     *SimpleTenant     `json:"tenant,omitempty"`
	TenantUser *TenantUserSimple `json:"tenant_user,omitempty"`
	FullName   *string           `json:"full_name,omitempty"`
}

// DisplayName returns the supplied full name or the derived one, empty when
// neither first nor last name is set.
func (u *User) DisplayName() string {
	if u.FullName != nil {
		return *u.FullName
	}
	return JoinName(u.FirstName, u.LastName)
}

// Clone returns a copy that shares no pointers with u
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	c.Profile.Avatar = cloneString(u.Profile.Avatar)
	c.FullName = cloneString(u.FullName)
	if u.Tenant != nil {
		t := *u.Tenant
		c.Tenant = &t
	}
	if u.TenantUser != nil {
		tu := *u.TenantUser
		c.TenantUser = &tu
	}

	return &c
}

type TenantUser struct {
	PK        int64     `json:"pk"`
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (tu TenantUser) Name() string {
	return JoinName(tu.FirstName, tu.LastName)
}

type Tenant struct {
	PK             int64            `json:"pk"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Logo           *string          `json:"logo,omitempty"`
	Website        string           `json:"website,omitempty"`
	TenantUsers    []TenantUser     `json:"tenant_users"`
	TenantsEnabled bool             `json:"tenants_enabled"`
	Me             TenantUserSimple `json:"me"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (t *Tenant) Clone() *Tenant {
	if t == nil {
		return nil
	}

	c := *t
	c.Logo = cloneString(t.Logo)
	if t.TenantUsers != nil {
		c.TenantUsers = make([]TenantUser, len(t.TenantUsers))
		copy(c.TenantUsers, t.TenantUsers)
	}

	return &c
}

// Member looks up a tenant user by primary key
func (t *Tenant) Member(pk int64) (TenantUser, bool) {
	for _, tu := range t.TenantUsers {
		if tu.PK == pk {
			return tu, true
		}
	}
	return TenantUser{}, false
}

type TenantLogo struct {
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Invitation is pending while AcceptedAt is null. Older payloads only carry
// IsAccepted, which is consulted when accepted_at is missing altogether: an
// explicit null still means pending.
type Invitation struct {
	PK         *int64     `json:"pk,omitempty"`
	Email      string     `json:"email"`
	InvitedBy  int64      `json:"invited_by"`
	LastSentAt *time.Time `json:"last_sent_at"`
	AcceptedAt *time.Time `json:"accepted_at"`
	IsAccepted *bool      `json:"is_accepted,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// set when the decoded payload had an accepted_at key, null included
	acceptedAtSet bool
}

type invitationJSON Invitation

func (i *Invitation) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var v invitationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	_, v.acceptedAtSet = fields["accepted_at"]
	*i = Invitation(v)

	return nil
}

// MarshalJSON leaves accepted_at out of legacy rows so IsAccepted keeps
// deciding once the payload is decoded again
func (i Invitation) MarshalJSON() ([]byte, error) {
	if i.legacy() {
		return json.Marshal(struct {
			invitationJSON
			AcceptedAt *time.Time `json:"accepted_at,omitempty"`
		}{invitationJSON: invitationJSON(i)})
	}
	return json.Marshal(invitationJSON(i))
}

func (i Invitation) legacy() bool {
	return i.AcceptedAt == nil && !i.acceptedAtSet && i.IsAccepted != nil
}

func (i Invitation) Pending() bool {
	if i.AcceptedAt != nil {
		return false
	}
	if i.legacy() {
		return !*i.IsAccepted
	}
	return true
}

type Provider struct {
	Provider string `json:"provider"`
	ClientID string `json:"client_id,omitempty"`
}

type SessionStatus struct {
	User            map[string]any `json:"user,omitempty"`
	IsAuthenticated *bool          `json:"is_authenticated,omitempty"`
}

// File is an in-memory upload, avatar or logo
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}

// JoinName joins the non-empty parts with a space and trims the result, inner
// spaces are kept as typed
func JoinName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
