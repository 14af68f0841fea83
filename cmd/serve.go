// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpclient "github.com/canonical/tenant-console/client/http"
	"github.com/canonical/tenant-console/internal/config"
	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring/prometheus"
	"github.com/canonical/tenant-console/internal/tracing"
	"github.com/canonical/tenant-console/internal/version"
	"github.com/canonical/tenant-console/pkg/authentication"
	"github.com/canonical/tenant-console/pkg/upload"
	"github.com/canonical/tenant-console/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web console",
	Long:  `Launch the web console, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// apiClientFactory builds the API client of one console session
func apiClientFactory(specs *config.EnvSpec) web.ClientFactory {
	return func() (*httpclient.Client, error) {
		return httpclient.NewClient(
			specs.APIURL,
			httpclient.WithClientKind(httpclient.ClientKind(specs.Client)),
			httpclient.WithProfilePath(specs.ProfilePath),
			httpclient.WithTimeout(specs.HTTPTimeout),
			httpclient.WithUserAgent("tenant-console/"+version.Version),
		)
	}
}

// sessionKey returns the cookie signing key, a random one means console
// sessions do not survive a restart
func sessionKey(specs *config.EnvSpec, logger logging.LoggerInterface) ([]byte, error) {
	if specs.SessionKey != "" {
		return []byte(specs.SessionKey), nil
	}

	logger.Warn("SESSION_KEY not set, using a random key")

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	return key, nil
}

func serve() error {
	specs, err := getSpecs()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-console", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	verifier, err := authentication.NewGoogleAuthenticator(ctx, specs.GoogleClientID, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up Google sign-in: %w", err)
	}

	newClient := apiClientFactory(specs)

	// the status check does not need a session
	backend, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	key, err := sessionKey(specs, logger)
	if err != nil {
		return err
	}

	registry := web.NewRegistry(
		web.NewCookieStore(key, specs.SecureCookies, specs.SessionIdleTimeout),
		newClient,
		verifier,
		upload.NewGate(specs.MaxUploadBytes),
		specs.SessionIdleTimeout,
		tracer,
		monitor,
		logger,
	)
	go registry.Run(ctx, time.Minute)

	pages, err := web.NewPages()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := web.NewRouter(
		registry,
		pages,
		backend,
		web.Options{
			GoogleClientID:     specs.GoogleClientID,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c
	stop()

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
