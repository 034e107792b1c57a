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
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"20"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"0"`
	DBConnectTimeout  time.Duration `envconfig:"db_connect_timeout" default:"2s"`
	DBAcquireTimeout  time.Duration `envconfig:"db_acquire_timeout" default:"2s"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30s"`

	// AuthenticationMode is one of oidc, jwt, kratos or noop.
	AuthenticationMode string `envconfig:"authentication_mode" default:"oidc"`

	OIDCIssuer        string `envconfig:"oidc_issuer"`
	OIDCJwksURL       string `envconfig:"oidc_jwks_url"`
	OIDCRequiredScope string `envconfig:"oidc_required_scope"`

	JWTSecret   string `envconfig:"jwt_secret"`
	JWTIssuer   string `envconfig:"jwt_issuer"`
	JWTAudience string `envconfig:"jwt_audience" default:"authenticated"`

	KratosPublicURL string `envconfig:"kratos_public_url"`

	WebhookSecret string `envconfig:"webhook_secret"`
}
