// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	APIURL      string        `envconfig:"api_url" default:"http://localhost:8000"`
	Client      string        `envconfig:"client" default:"browser"`
	ProfilePath string        `envconfig:"profile_path" default:"auth/profile/me/"`
	HTTPTimeout time.Duration `envconfig:"http_timeout" default:"30s"`

	SessionKey         string        `envconfig:"session_key"`
	SessionIdleTimeout time.Duration `envconfig:"session_idle_timeout" default:"30m"`
	SecureCookies      bool          `envconfig:"secure_cookies" default:"true"`

	MaxUploadBytes int64 `envconfig:"max_upload_bytes" default:"5242880"`

	GoogleClientID     string `envconfig:"google_client_id"`
	GoogleClientSecret string `envconfig:"google_client_secret"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
