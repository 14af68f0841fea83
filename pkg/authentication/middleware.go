// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/state"
)

// SessionResolver returns the API client and state bound to the browser that
// sent r, false when the browser has no console session yet
type SessionResolver func(r *http.Request) (ClientInterface, *state.Session, bool)

type Middleware struct {
	guard     *Guard
	resolve   SessionResolver
	loginPath string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Protect runs the guard on every request, unauthenticated browsers are sent
// to the login page with the original location in the next parameter
func (m *Middleware) Protect() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Protect")
			defer span.End()

			client, sess, ok := m.resolve(r)
			if !ok {
				http.Redirect(w, r, LoginRedirect(m.loginPath, r.URL), http.StatusFound)
				return
			}

			if _, err := m.guard.Bootstrap(ctx, client, sess); err != nil {
				m.logger.Debugf("guard rejected %s: %v", r.URL.Path, err)
				http.Redirect(w, r, LoginRedirect(m.loginPath, r.URL), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
		})
	}
}

// LoginRedirect builds the login location carrying from as the next parameter
func LoginRedirect(loginPath string, from *url.URL) string {
	origin := from.EscapedPath()
	if from.RawQuery != "" {
		origin += "?" + from.RawQuery
	}

	if origin == "" || origin == "/" {
		return loginPath
	}

	return loginPath + "?" + url.Values{"next": {origin}}.Encode()
}

// SafeNext returns next when it is a local path and "/" otherwise
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return "/"
	}

	// protocol relative and backslash variants leave the origin
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return next
}

func NewMiddleware(guard *Guard, resolve SessionResolver, loginPath string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		guard:     guard,
		resolve:   resolve,
		loginPath: loginPath,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
