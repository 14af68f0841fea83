// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	"github.com/canonical/tenant-console/internal/logging"
)

func tokenServer(t *testing.T, withIDToken bool) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse token request: %v", err)
		}
		if r.PostForm.Get("code") != "auth-code" {
			t.Errorf("unexpected code %q", r.PostForm.Get("code"))
		}
		if r.PostForm.Get("code_verifier") == "" {
			t.Errorf("expected a PKCE verifier")
		}

		body := map[string]any{"access_token": "access", "token_type": "Bearer", "expires_in": 3600}
		if withIDToken {
			body["id_token"] = "the-id-token"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
}

// browser follows the authorization URL the way the provider would, by
// redirecting straight back to the loopback listener
func browser(t *testing.T, overrideState string) BrowserOpener {
	return func(authURL string) error {
		u, err := url.Parse(authURL)
		if err != nil {
			return err
		}

		q := u.Query()
		if q.Get("code_challenge_method") != "S256" || q.Get("code_challenge") == "" {
			t.Errorf("expected an S256 code challenge, got %q", u.RawQuery)
		}

		state := q.Get("state")
		if overrideState != "" {
			state = overrideState
		}

		callback := q.Get("redirect_uri") + "?" + url.Values{"code": {"auth-code"}, "state": {state}}.Encode()

		resp, err := http.Get(callback)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		return nil
	}
}

func TestLoopbackLogin(t *testing.T) {
	tests := []struct {
		name          string
		withIDToken   bool
		overrideState string
		expectErr     bool
	}{
		{name: "id token returned", withIDToken: true},
		{name: "no id token", withIDToken: false, expectErr: true},
		{name: "state mismatch", withIDToken: true, overrideState: "forged", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := tokenServer(t, test.withIDToken)
			defer srv.Close()

			mockTracer := NewMockTracingInterface(ctrl)
			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.LoopbackLogin.IDToken").Return(ctx, trace.SpanFromContext(ctx))

			endpoint := oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
			login := NewLoopbackLogin(endpoint, "console-client", "secret", mockTracer, NewMockMonitorInterface(ctrl), logging.NewNoopLogger())

			token, err := login.IDToken(ctx, browser(t, test.overrideState))

			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", token)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != "the-id-token" {
				t.Errorf("expected id token, got %q", token)
			}
			if login.ClientID() != "console-client" {
				t.Errorf("unexpected client id %q", login.ClientID())
			}
		})
	}
}
