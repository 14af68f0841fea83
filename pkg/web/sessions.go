// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/profile"
	"github.com/canonical/tenant-console/pkg/state"
	"github.com/canonical/tenant-console/pkg/tenant"
	"github.com/canonical/tenant-console/pkg/upload"
)

const (
	sessionCookie = "console_session"
	flashCookie   = "console_flash"
	sessionIDKey  = "id"

	FlashSuccess = "success"
	FlashError   = "error"
)

// ClientFactory builds the account API client owned by one browser session
type ClientFactory func() (*httpclient.Client, error)

// Entry is everything the console keeps for one browser. The account API
// cookies live in Client, the browser only holds the entry id.
type Entry struct {
	ID      string
	Client  *httpclient.Client
	State   *state.Session
	Flow    *authentication.Flow
	Profile *profile.Service
	Tenant  *tenant.Service

	mu       sync.Mutex
	lastSeen time.Time
}

func (e *Entry) touch(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastSeen = now
}

func (e *Entry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	return now.Sub(e.lastSeen)
}

type Flash struct {
	Kind    string
	Message string
}

// Registry maps console session ids to entries. Entries not used for longer
// than the idle timeout are dropped by Sweep.
type Registry struct {
	store     sessions.Store
	newClient ClientFactory
	verifier  authentication.TokenVerifierInterface
	gate      *upload.Gate
	idle      time.Duration

	mu      sync.RWMutex
	entries map[string]*Entry
	owners  map[*state.Session]*Entry
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Registry) sessionID(req *http.Request) (string, bool) {
	sess, err := r.store.Get(req, sessionCookie)
	if err != nil {
		r.logger.Debugf("invalid console session cookie: %v", err)
		return "", false
	}

	id, ok := sess.Values[sessionIDKey].(string)
	return id, ok && id != ""
}

// Lookup returns the entry of the browser that sent req without creating one
func (r *Registry) Lookup(req *http.Request) (*Entry, bool) {
	id, ok := r.sessionID(req)
	if !ok {
		return nil, false
	}

	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	e.touch(r.now())

	return e, true
}

// Ensure returns the entry of the browser, creating it and setting the
// session cookie when there is none
func (r *Registry) Ensure(w http.ResponseWriter, req *http.Request) (*Entry, error) {
	if e, ok := r.Lookup(req); ok {
		return e, nil
	}

	e, err := r.newEntry()
	if err != nil {
		return nil, err
	}

	sess, _ := r.store.Get(req, sessionCookie)
	sess.Values[sessionIDKey] = e.ID

	if err := sess.Save(req, w); err != nil {
		return nil, fmt.Errorf("failed to save console session: %w", err)
	}

	r.mu.Lock()
	r.entries[e.ID] = e
	r.owners[e.State] = e
	r.mu.Unlock()

	return e, nil
}

func (r *Registry) newEntry() (*Entry, error) {
	client, err := r.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	st := state.NewSession()

	return &Entry{
		ID:       uuid.NewString(),
		Client:   client,
		State:    st,
		Flow:     authentication.NewFlow(client, r.verifier, r.tracer, r.monitor, r.logger),
		Profile:  profile.NewService(client, st, r.gate, r.tracer, r.monitor, r.logger),
		Tenant:   tenant.NewService(client, st, r.gate, r.tracer, r.monitor, r.logger),
		lastSeen: r.now(),
	}, nil
}

// Drop forgets the entry of the browser and expires its cookie
func (r *Registry) Drop(w http.ResponseWriter, req *http.Request) {
	if id, ok := r.sessionID(req); ok {
		r.mu.Lock()
		r.forget(id)
		r.mu.Unlock()
	}

	sess, _ := r.store.Get(req, sessionCookie)
	sess.Options.MaxAge = -1
	delete(sess.Values, sessionIDKey)

	if err := sess.Save(req, w); err != nil {
		r.logger.Errorf("failed to expire console session: %v", err)
	}
}

// Sweep drops the entries idle for longer than the timeout and returns how
// many were removed
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.idleSince(now) > r.idle {
			r.forget(id)
			removed++
		}
	}

	return removed
}

// forget removes the entry with the given id, r.mu must be held
func (r *Registry) forget(id string) {
	if e, ok := r.entries[id]; ok {
		delete(r.owners, e.State)
		delete(r.entries, id)
	}
}

// Run sweeps periodically until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debugf("expired %d idle console sessions", n)
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Owner returns the entry holding sess, the session the guards attach to
// the request context
func (r *Registry) Owner(sess *state.Session) (*Entry, bool) {
	r.mu.RLock()
	e, ok := r.owners[sess]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	e.touch(r.now())

	return e, true
}

// Resolve is the authentication.SessionResolver of the console
func (r *Registry) Resolve(req *http.Request) (authentication.ClientInterface, *state.Session, bool) {
	e, ok := r.Lookup(req)
	if !ok {
		return nil, nil, false
	}
	return e.Client, e.State, true
}

// TenantService is the tenant.ServiceResolver of the console, req must have
// passed the api guard
func (r *Registry) TenantService(req *http.Request) (tenant.ServiceInterface, bool) {
	sess, ok := authentication.GetSession(req.Context())
	if !ok {
		return nil, false
	}

	e, ok := r.Owner(sess)
	if !ok {
		return nil, false
	}
	return e.Tenant, true
}

func (r *Registry) AddFlash(w http.ResponseWriter, req *http.Request, kind, message string) {
	sess, _ := r.store.Get(req, flashCookie)
	sess.AddFlash(message, kind)

	if err := sess.Save(req, w); err != nil {
		r.logger.Errorf("failed to save flash message: %v", err)
	}
}

// Flashes pops the pending toasts, errors first
func (r *Registry) Flashes(w http.ResponseWriter, req *http.Request) []Flash {
	sess, _ := r.store.Get(req, flashCookie)

	flashes := make([]Flash, 0)
	for _, kind := range []string{FlashError, FlashSuccess} {
		for _, f := range sess.Flashes(kind) {
			if msg, ok := f.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: msg})
			}
		}
	}

	if len(flashes) > 0 {
		if err := sess.Save(req, w); err != nil {
			r.logger.Errorf("failed to clear flash messages: %v", err)
		}
	}

	return flashes
}

// NewCookieStore returns the signed cookie store holding the console session
// id and the flash messages
func NewCookieStore(key []byte, secure bool, maxAge time.Duration) *sessions.CookieStore {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

func NewRegistry(
	store sessions.Store,
	newClient ClientFactory,
	verifier authentication.TokenVerifierInterface,
	gate *upload.Gate,
	idle time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Registry {
	r := new(Registry)

	r.store = store
	r.newClient = newClient
	r.verifier = verifier
	r.gate = gate
	r.idle = idle
	r.entries = make(map[string]*Entry)
	r.owners = make(map[*state.Session]*Entry)
	r.now = time.Now

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
