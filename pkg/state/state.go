// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package state holds the user and tenant known to one console session or
// one CLI invocation. Values are copied on the way in and out so callers can
// never mutate the stored snapshot behind the store's back.
package state

import (
	"sync"

	"github.com/canonical/tenant-console/internal/types"
)

type UserStore struct {
	mu   sync.RWMutex
	user *types.User
}

// SetUser replaces the stored user. The display name is derived from first
// and last name unless the caller already supplied one, and left unset when
// both are empty.
func (s *UserStore) SetUser(u *types.User) {
	if u == nil {
		s.ClearUser()
		return
	}

	c := u.Clone()
	if c.FullName == nil {
		if name := types.JoinName(c.FirstName, c.LastName); name != "" {
			c.FullName = &name
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = c
}

// UpdateAvatar swaps the avatar only, it does nothing when no user is stored
func (s *UserStore) UpdateAvatar(url *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	if url == nil {
		s.user.Profile.Avatar = nil
		return
	}

	v := *url
	s.user.Profile.Avatar = &v
}

func (s *UserStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
}

func (s *UserStore) User() (*types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	return s.user.Clone(), true
}

// TenantPatch lists the fields a team settings edit may change, nil fields
// are left untouched.
type TenantPatch struct {
	Name        *string
	Slug        *string
	Website     *string
	Logo        *string
	ClearLogo   bool
	TenantUsers []types.TenantUser
}

type TenantStore struct {
	mu     sync.RWMutex
	tenant *types.Tenant
}

func (s *TenantStore) SetTenant(t *types.Tenant) {
	c := t.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tenant = c
}

// UpdateTenant shallow merges p into the stored tenant, it does nothing when
// no tenant is stored.
func (s *TenantStore) UpdateTenant(p TenantPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tenant == nil {
		return
	}

	if p.Name != nil {
		s.tenant.Name = *p.Name
	}
	if p.Slug != nil {
		s.tenant.Slug = *p.Slug
	}
	if p.Website != nil {
		s.tenant.Website = *p.Website
	}
	if p.Logo != nil {
		v := *p.Logo
		s.tenant.Logo = &v
	}
	if p.ClearLogo {
		s.tenant.Logo = nil
	}
	if p.TenantUsers != nil {
		s.tenant.TenantUsers = make([]types.TenantUser, len(p.TenantUsers))
		copy(s.tenant.TenantUsers, p.TenantUsers)
	}
}

func (s *TenantStore) ClearTenant() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tenant = nil
}

func (s *TenantStore) Tenant() (*types.Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tenant == nil {
		return nil, false
	}
	return s.tenant.Clone(), true
}

// Session groups the stores for one authenticated actor
type Session struct {
	Users   *UserStore
	Tenants *TenantStore
}

// Snapshot is a point in time copy of a Session
type Snapshot struct {
	User   *types.User   `json:"user"`
	Tenant *types.Tenant `json:"tenant"`
}

func (s *Session) Snapshot() Snapshot {
	u, _ := s.Users.User()
	t, _ := s.Tenants.Tenant()

	return Snapshot{User: u, Tenant: t}
}

// Authenticated reports whether a user has been stored
func (s *Session) Authenticated() bool {
	_, ok := s.Users.User()
	return ok
}

// Role returns the caller's role within the stored tenant
func (s *Session) Role() types.Role {
	if t, ok := s.Tenants.Tenant(); ok {
		return t.Me.Role
	}
	return ""
}

// Clear empties both stores, used on logout
func (s *Session) Clear() {
	s.Users.ClearUser()
	s.Tenants.ClearTenant()
}

func NewSession() *Session {
	return &Session{
		Users:   new(UserStore),
		Tenants: new(TenantStore),
	}
}
