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

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// EncryptionKey is the process-wide vault key, 32 bytes hex encoded.
	EncryptionKey string `envconfig:"encryption_key" required:"true"`
	// APIKeySalt is mixed into the one-way hash of tenant API keys.
	APIKeySalt string `envconfig:"api_key_salt" required:"true"`

	CRMClientID     string `envconfig:"crm_client_id" required:"true"`
	CRMClientSecret string `envconfig:"crm_client_secret" required:"true"`
	CRMAuthURL      string `envconfig:"crm_auth_url" required:"true"`
	CRMTokenURL     string `envconfig:"crm_token_url" required:"true"`
	// RedirectURIBase is the externally reachable base of this service,
	// used to build the OAuth callback URL.
	RedirectURIBase string `envconfig:"redirect_uri_base" required:"true"`

	OAuthStateTTL      time.Duration `envconfig:"oauth_state_ttl" default:"10m"`
	CRMExchangeTimeout time.Duration `envconfig:"crm_exchange_timeout" default:"5s"`
	CRMExchangeRetries uint          `envconfig:"crm_exchange_retries" default:"3"`
}
