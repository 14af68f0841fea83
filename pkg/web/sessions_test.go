// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/state"
	"github.com/canonical/tenant-console/pkg/upload"
)

func newTestRegistry(t *testing.T, factory ClientFactory) *Registry {
	t.Helper()

	logger := logging.NewNoopLogger()

	if factory == nil {
		factory = func() (*httpclient.Client, error) {
			return httpclient.NewClient("http://backend.test")
		}
	}

	return NewRegistry(
		NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), false, time.Hour),
		factory,
		nil,
		upload.NewGate(0),
		30*time.Minute,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("console", logger),
		logger,
	)
}

// replay copies the cookies set on w onto a fresh request, the last value
// written for a name wins as it does in a browser
func replay(w *httptest.ResponseRecorder) *http.Request {
	latest := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		latest[c.Name] = c
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range latest {
		req.AddCookie(c)
	}
	return req
}

func TestRegistryEnsureAndLookup(t *testing.T) {
	registry := newTestRegistry(t, nil)

	if _, ok := registry.Lookup(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatalf("expected no entry without a cookie")
	}

	w := httptest.NewRecorder()
	entry, err := registry.Ensure(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Flow == nil || entry.Profile == nil || entry.Tenant == nil || entry.State == nil {
		t.Fatalf("expected a fully wired entry, got %+v", entry)
	}

	found, ok := registry.Lookup(replay(w))
	if !ok || found.ID != entry.ID {
		t.Fatalf("expected the cookie to resolve to entry %s", entry.ID)
	}

	again, err := registry.Ensure(httptest.NewRecorder(), replay(w))
	if err != nil || again != entry {
		t.Errorf("expected Ensure to reuse the existing entry")
	}

	client, sess, ok := registry.Resolve(replay(w))
	if !ok || client != entry.Client || sess != entry.State {
		t.Errorf("expected Resolve to return the entry client and state")
	}

	if svc, ok := registry.TenantService(replay(w)); !ok || svc == nil {
		t.Errorf("expected a tenant service for the entry")
	}
}

func TestRegistryEnsureClientFailure(t *testing.T) {
	registry := newTestRegistry(t, func() (*httpclient.Client, error) {
		return nil, errors.New("bad url")
	})

	if _, err := registry.Ensure(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil)); err == nil {
		t.Fatalf("expected error")
	}

	if registry.Len() != 0 {
		t.Errorf("expected no entry to be stored")
	}
}

func TestRegistryDrop(t *testing.T) {
	registry := newTestRegistry(t, nil)

	w := httptest.NewRecorder()
	if _, err := registry.Ensure(w, httptest.NewRequest(http.MethodPost, "/login", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dw := httptest.NewRecorder()
	registry.Drop(dw, replay(w))

	if registry.Len() != 0 {
		t.Errorf("expected entry to be dropped")
	}

	expired := false
	for _, c := range dw.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Errorf("expected the session cookie to be expired")
	}

	if _, ok := registry.Lookup(replay(w)); ok {
		t.Errorf("a dropped entry must not resolve")
	}
}

func TestRegistryOwner(t *testing.T) {
	registry := newTestRegistry(t, nil)

	w := httptest.NewRecorder()
	e, err := registry.Ensure(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if owner, ok := registry.Owner(e.State); !ok || owner != e {
		t.Fatalf("expected the entry to own its session")
	}
	if _, ok := registry.Owner(state.NewSession()); ok {
		t.Errorf("an unknown session must not resolve")
	}

	req := replay(w)
	if _, ok := registry.TenantService(req); ok {
		t.Errorf("expected no tenant service without a guarded session")
	}

	guarded := req.WithContext(authentication.WithSession(req.Context(), e.State))
	if svc, ok := registry.TenantService(guarded); !ok || svc != e.Tenant {
		t.Errorf("expected the tenant service of the entry")
	}

	registry.Drop(httptest.NewRecorder(), req)

	if _, ok := registry.Owner(e.State); ok {
		t.Errorf("a dropped entry must not own its session")
	}
	if _, ok := registry.TenantService(guarded); ok {
		t.Errorf("expected no tenant service once the entry is dropped")
	}
}

func TestRegistrySweep(t *testing.T) {
	registry := newTestRegistry(t, nil)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	idle := httptest.NewRecorder()
	idleEntry, err := registry.Ensure(idle, httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(20 * time.Minute)

	active := httptest.NewRecorder()
	if _, err := registry.Ensure(active, httptest.NewRequest(http.MethodPost, "/login", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(15 * time.Minute)

	if removed := registry.Sweep(); removed != 1 {
		t.Fatalf("expected one idle entry to be removed, got %d", removed)
	}

	if _, ok := registry.Lookup(replay(idle)); ok {
		t.Errorf("expected the idle entry to be gone")
	}
	if _, ok := registry.Owner(idleEntry.State); ok {
		t.Errorf("expected the idle session to have no owner")
	}
	if _, ok := registry.Lookup(replay(active)); !ok {
		t.Errorf("expected the active entry to survive")
	}
}

func TestRegistryFlashes(t *testing.T) {
	registry := newTestRegistry(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settings/profile", nil)
	registry.AddFlash(w, req, FlashSuccess, "Profile updated.")
	registry.AddFlash(w, req, FlashError, "Something went wrong. Please try again.")

	rw := httptest.NewRecorder()
	flashes := registry.Flashes(rw, replay(w))

	if len(flashes) != 2 {
		t.Fatalf("expected 2 flashes, got %d", len(flashes))
	}
	if flashes[0].Kind != FlashError || flashes[1].Message != "Profile updated." {
		t.Errorf("expected errors first, got %+v", flashes)
	}

	if again := registry.Flashes(httptest.NewRecorder(), replay(rw)); len(again) != 0 {
		t.Errorf("expected flashes to be consumed, got %+v", again)
	}
}
