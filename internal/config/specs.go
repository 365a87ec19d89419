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

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	CacheEnabled    bool          `envconfig:"cache_enabled" default:"true"`
	CacheAddr       string        `envconfig:"cache_addr" default:"localhost:6379"`
	CachePassword   string        `envconfig:"cache_password"`
	CacheDB         int           `envconfig:"cache_db" default:"0"`
	CacheTTL        time.Duration `envconfig:"cache_ttl" default:"2h"`
	CacheUpdateOnly bool          `envconfig:"cache_update_only" default:"false"`

	InvitationLinkLifetime time.Duration `envconfig:"invitation_link_lifetime" default:"168h"`

	AccountCancellationGracePeriod    time.Duration `envconfig:"account_cancellation_grace_period" default:"720h"`
	SubscriptionExpirationGracePeriod time.Duration `envconfig:"subscription_expiration_grace_period" default:"120h"`
	TrashGracePeriod                  time.Duration `envconfig:"trash_grace_period" default:"720h"`

	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     string `envconfig:"smtp_port" default:"25"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	SenderEmail  string `envconfig:"sender_email" default:"noreply@appdomain.com"`
	SenderName   string `envconfig:"sender_name" default:"Account Service"`

	AppName string `envconfig:"app_name" default:"Account Service"`
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`
}
