// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/config"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/version"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/profile"
	"github.com/canonical/tenant-console/pkg/state"
	"github.com/canonical/tenant-console/pkg/tenant"
	"github.com/canonical/tenant-console/pkg/upload"
)

var errNotLoggedIn = errors.New("not logged in, run `login`")

// console bundles the API client of the stored session with the services
// the commands drive
type console struct {
	specs   *config.EnvSpec
	client  *httpclient.Client
	file    *httpclient.SessionFile
	session *state.Session
	gate    *upload.Gate

	// forget is set on logout so the closer does not write the session back
	forget bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// getSpecs reads the environment, the persistent flags win over it
func getSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if apiURL != "" {
		specs.APIURL = apiURL
	}
	if clientKind != "" {
		specs.Client = clientKind
	}
	if profilePath != "" {
		specs.ProfilePath = profilePath
	}
	if logLevel != "" {
		specs.LogLevel = logLevel
	}

	return specs, nil
}

// getClient returns the console of the stored session and a closure that
// persists the session credentials and flushes the logger
func getClient() (func() error, *console, error) {
	specs, err := getSpecs()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)

	client, err := httpclient.NewClient(
		specs.APIURL,
		httpclient.WithClientKind(httpclient.ClientKind(specs.Client)),
		httpclient.WithProfilePath(specs.ProfilePath),
		httpclient.WithTimeout(specs.HTTPTimeout),
		httpclient.WithUserAgent("tenant-console/"+version.Version),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create API client: %w", err)
	}

	file, err := httpclient.NewSessionFile(sessionFile)
	if err != nil {
		return nil, nil, err
	}

	if err := file.Load(client); err != nil && !errors.Is(err, httpclient.ErrNoSession) {
		logger.Warnf("ignoring stored session: %v", err)
	}

	c := &console{
		specs:   specs,
		client:  client,
		file:    file,
		session: state.NewSession(),
		gate:    upload.NewGate(specs.MaxUploadBytes),
		tracer:  tracing.NewNoopTracer(),
		monitor: monitoring.NewNoopMonitor("tenant-console", logger),
		logger:  logger,
	}

	closer := func() error {
		defer logger.Sync()

		if c.forget {
			return nil
		}
		return file.Save(client)
	}

	return closer, c, nil
}

// requireLogin loads the current user and team, commands that need a
// session call it before anything else
func (c *console) requireLogin(ctx context.Context) error {
	guard := authentication.NewGuard(c.tracer, c.monitor, c.logger)

	if _, err := guard.Bootstrap(ctx, c.client, c.session); err != nil {
		if httpclient.IsUnauthorized(err) || httpclient.IsForbidden(err) || httpclient.IsStatus(err, http.StatusGone) {
			return errNotLoggedIn
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	return nil
}

func (c *console) flow(verifier authentication.TokenVerifierInterface) *authentication.Flow {
	return authentication.NewFlow(c.client, verifier, c.tracer, c.monitor, c.logger)
}

func (c *console) profile() *profile.Service {
	return profile.NewService(c.client, c.session, c.gate, c.tracer, c.monitor, c.logger)
}

func (c *console) tenant() *tenant.Service {
	return tenant.NewService(c.client, c.session, c.gate, c.tracer, c.monitor, c.logger)
}

// tenantError turns a team failure into the message shown on the console,
// unexpected errors are returned as they are
func tenantError(err error) error {
	msg := tenant.Message(err)
	if msg == tenant.Message(nil) {
		return err
	}
	return errors.New(msg)
}

// uploadError returns the gate's user facing message for rejected files
func uploadError(gate *upload.Gate, err error) error {
	if msg := gate.Message(err); msg != "" {
		return errors.New(msg)
	}
	return err
}
