// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/version"
)

const (
	okValue = 1.0
	koValue = 0.0

	checkTimeout = 5 * time.Second
)

type Status struct {
	Status    string     `json:"status"`
	Backend   string     `json:"backend"`
	BuildInfo *BuildInfo `json:"buildInfo"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type API struct {
	backend BackendInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

// alive reports the console as up even when the account API is not reachable,
// the backend field and the dependency gauge carry that information
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	backend := "ok"
	if !a.check(ctx) {
		backend = "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(
		Status{
			Status:    "ok",
			Backend:   backend,
			BuildInfo: buildInfo(),
		},
	)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(buildInfo())
}

func (a *API) check(ctx context.Context) bool {
	if a.backend == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	tags := map[string]string{"component": "backend"}

	if _, err := a.backend.AuthProvidersList(ctx); err != nil {
		a.logger.Debugf("account api check failed: %v", err)
		_ = a.monitor.SetDependencyAvailability(tags, koValue)
		return false
	}

	_ = a.monitor.SetDependencyAvailability(tags, okValue)
	return true
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{Version: version.Version}
	}

	buildInfo := new(BuildInfo)
	buildInfo.Name = info.Main.Path
	buildInfo.Version = version.Version

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			buildInfo.CommitHash = setting.Value
		}
	}

	return buildInfo
}

func NewAPI(backend BackendInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.backend = backend
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
