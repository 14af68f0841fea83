// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"filippo.io/csrf"
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/tenant-console/internal/http/types"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/metrics"
	"github.com/canonical/tenant-console/pkg/status"
	"github.com/canonical/tenant-console/pkg/tenant"
)

type Options struct {
	GoogleClientID     string
	CORSAllowedOrigins []string
}

func NewRouter(
	registry *Registry,
	pages *Pages,
	backend status.BackendInterface,
	opts Options,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		apiOnly(middlewareCORS(opts.CORSAllowedOrigins)),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(backend, tracer, monitor, logger).RegisterEndpoints(router)

	guard := authentication.NewGuard(tracer, monitor, logger)
	console := NewConsole(registry, guard, pages, registry.gate, opts.GoogleClientID, tracer, monitor, logger)

	// JSON routes answer 401 when the guard fails
	router.Group(func(r chi.Router) {
		r.Use(apiGuard(guard, registry, logger))

		console.RegisterAPI(r)
		tenant.NewAPI(registry.TenantService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	// HTML routes get cross origin request protection
	protection := csrf.New()

	router.Group(func(r chi.Router) {
		r.Use(protection.Handler)

		console.RegisterPublic(r)

		r.Group(func(r chi.Router) {
			r.Use(authentication.NewMiddleware(guard, registry.Resolve, loginPath, tracer, monitor, logger).Protect())

			console.RegisterProtected(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// apiGuard bootstraps the session like the page guard but answers 401
// instead of redirecting to the login page
func apiGuard(guard *authentication.Guard, registry *Registry, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, sess, ok := registry.Resolve(r)
			if !ok {
				types.WriteError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			if _, err := guard.Bootstrap(r.Context(), client, sess); err != nil {
				logger.Debugf("api guard rejected %s: %v", r.URL.Path, err)
				types.WriteError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), sess)))
		})
	}
}
