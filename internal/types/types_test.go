// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJoinName(t *testing.T) {
	tests := []struct {
		first, last string
		expected    string
	}{
		{"Ada", "", "Ada"},
		{"  Ada ", "", "Ada"},
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
		{" ", " ", ""},
		{"Ada ", "L", "Ada  L"},
		{" ", "Lovelace", "Lovelace"},
	}

	for _, test := range tests {
		if got := JoinName(test.first, test.last); got != test.expected {
			t.Errorf("JoinName(%q, %q) = %q, expected %q", test.first, test.last, got, test.expected)
		}
	}
}

func TestInvitationPending(t *testing.T) {
	now := time.Now()
	yes, no := true, false

	tests := []struct {
		name       string
		invitation Invitation
		expected   bool
	}{
		{"accepted_at null", Invitation{}, true},
		{"accepted_at set", Invitation{AcceptedAt: &now}, false},
		{"is_accepted false without accepted_at", Invitation{IsAccepted: &no}, true},
		{"is_accepted true without accepted_at", Invitation{IsAccepted: &yes}, false},
		{"accepted_at wins over is_accepted", Invitation{AcceptedAt: &now, IsAccepted: &no}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.invitation.Pending(); got != test.expected {
				t.Errorf("expected pending %v, got %v", test.expected, got)
			}
		})
	}
}

func TestInvitationPendingDecoded(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected bool
	}{
		{"no acceptance fields", `{"email": "a@example.com"}`, true},
		{"accepted_at null", `{"accepted_at": null}`, true},
		{"accepted_at null wins over is_accepted", `{"accepted_at": null, "is_accepted": true}`, true},
		{"accepted_at set", `{"accepted_at": "2025-01-02T03:04:05Z", "is_accepted": false}`, false},
		{"legacy accepted", `{"is_accepted": true}`, false},
		{"legacy pending", `{"is_accepted": false}`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var i Invitation
			if err := json.Unmarshal([]byte(test.payload), &i); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := i.Pending(); got != test.expected {
				t.Errorf("expected pending %v, got %v", test.expected, got)
			}

			// the API handlers re-encode invitations, the answer must survive
			data, err := json.Marshal(i)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var again Invitation
			if err := json.Unmarshal(data, &again); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := again.Pending(); got != test.expected {
				t.Errorf("expected pending %v after encoding %s, got %v", test.expected, data, got)
			}
		})
	}
}

func TestInvitationDecodeRejectsNonObject(t *testing.T) {
	var i Invitation
	if err := json.Unmarshal([]byte(`["a@example.com"]`), &i); err == nil {
		t.Errorf("expected an error")
	}
}

func TestUserCloneIsIndependent(t *testing.T) {
	avatar := "https://cdn.example.com/a.png"
	u := &User{PK: 1, FirstName: "Ada", Profile: UserProfile{Avatar: &avatar}, Tenant: &SimpleTenant{PK: 2, Name: "Team"}}

	c := u.Clone()
	*c.Profile.Avatar = "changed"
	c.Tenant.Name = "Other"

	if *u.Profile.Avatar != avatar {
		t.Errorf("clone shares avatar pointer")
	}
	if u.Tenant.Name != "Team" {
		t.Errorf("clone shares tenant pointer")
	}
}

func TestTenantDecode(t *testing.T) {
	payload := `{
		"pk": 3,
		"name": "Acme",
		"slug": "acme",
		"logo": "https://cdn.example.com/logo.png",
		"tenant_users": [
			{"pk": 1, "role": "owner", "email": "ada@example.com", "first_name": "Ada", "last_name": "", "created_at": "2025-01-02T03:04:05.123456Z", "updated_at": "2025-01-02T03:04:05Z"}
		],
		"tenants_enabled": true,
		"me": {"pk": 1, "role": "owner"},
		"created_at": "2025-01-02T03:04:05+00:00",
		"updated_at": "2025-01-02T03:04:05+00:00"
	}`

	var tenant Tenant
	if err := json.Unmarshal([]byte(payload), &tenant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.Me.Role != RoleOwner {
		t.Errorf("expected owner role, got %q", tenant.Me.Role)
	}
	if m, ok := tenant.Member(1); !ok || m.Name() != "Ada" {
		t.Errorf("expected member Ada, got %+v", m)
	}
	if _, ok := tenant.Member(99); ok {
		t.Errorf("did not expect member 99")
	}
}

func TestRole(t *testing.T) {
	if !RoleAdmin.Valid() || Role("root").Valid() {
		t.Errorf("unexpected role validity")
	}
	if RoleUser.Manager() || !RoleOwner.Manager() {
		t.Errorf("unexpected manager flags")
	}
}
