// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/canonical/tenant-console/internal/monitoring"
	"github.com/canonical/tenant-console/internal/tracing"
)

// BrowserOpener shows the authorization URL to the user
type BrowserOpener func(authURL string) error

type callbackResult struct {
	code string
	err  error
}

// LoopbackLogin obtains a provider ID token from a terminal: the user signs
// in with a browser and the provider redirects back to a short lived listener
// on 127.0.0.1. The code is exchanged with PKCE.
type LoopbackLogin struct {
	config oauth2.Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *LoopbackLogin) ClientID() string {
	return l.config.ClientID
}

func (l *LoopbackLogin) IDToken(ctx context.Context, open BrowserOpener) (string, error) {
	ctx, span := l.tracer.Start(ctx, "authentication.LoopbackLogin.IDToken")
	defer span.End()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to listen for the provider callback: %w", err)
	}

	cfg := l.config
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", ln.Addr().String())

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var res callbackResult
		switch {
		case q.Get("state") != state:
			l.logger.Warn("provider callback state mismatch")
			res.err = errors.New("state mismatch")
		case q.Get("error") != "":
			res.err = fmt.Errorf("provider returned %s: %s", q.Get("error"), q.Get("error_description"))
		case q.Get("code") == "":
			res.err = errors.New("provider callback without a code")
		default:
			res.code = q.Get("code")
		}

		if res.err != nil {
			http.Error(w, "Login failed, return to the terminal.", http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "Login complete, you can close this window.")
		}

		select {
		case results <- res:
		default:
		}
	})

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.Errorf("callback listener stopped: %v", err)
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.S256ChallengeOption(verifier))
	if err := open(authURL); err != nil {
		return "", fmt.Errorf("failed to open the authorization page: %w", err)
	}

	var res callbackResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-results:
	}

	if res.err != nil {
		return "", res.err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &otelHTTPClient)

	token, err := cfg.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("token response did not include an id_token")
	}

	return idToken, nil
}

func NewLoopbackLogin(
	endpoint oauth2.Endpoint,
	clientID, clientSecret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *LoopbackLogin {
	l := new(LoopbackLogin)

	l.config = oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}

// NewGoogleLoopbackLogin discovers Google's endpoints before building the
// loopback login
func NewGoogleLoopbackLogin(
	ctx context.Context,
	clientID, clientSecret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*LoopbackLogin, error) {
	if clientID == "" {
		return nil, errors.New("google client id is required")
	}

	provider, err := NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, err
	}

	return NewLoopbackLogin(provider.Endpoint(), clientID, clientSecret, tracer, monitor, logger), nil
}
