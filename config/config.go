// Package config loads the gateway configuration from the environment and an
// optional YAML file.
package config

import "time"

// Auth modes select how the caller identity is established.
const (
	AuthModeJWT     = "jwt"
	AuthModeSession = "session"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	Audit    AuditConfig    `yaml:"audit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds the sqlite database location.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DATABASE_PATH" env-default:"audit_gateway.db"`
}

// AuthConfig holds identity settings for both auth modes.
type AuthConfig struct {
	Mode        string     `yaml:"mode"          env:"AUTH_MODE"          env-default:"jwt"`
	JWTSecret   string     `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"`
	JWTIssuer   string     `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"`
	JWTAudience string     `yaml:"jwt_audience"  env:"AUTH_JWT_AUDIENCE"`
	UserIDClaim string     `yaml:"user_id_claim" env:"AUTH_USER_ID_CLAIM" env-default:"nameid"`
	OIDC        OIDCConfig `yaml:"oidc"`

	// SecureCookies marks the session cookie Secure; enable behind HTTPS.
	SecureCookies bool `yaml:"secure_cookies" env:"AUTH_SECURE_COOKIES" env-default:"false"`
}

// OIDCConfig holds the OpenID Connect login settings used in session mode.
type OIDCConfig struct {
	Domain       string `yaml:"domain"        env:"AUTH_OIDC_DOMAIN"`
	ClientID     string `yaml:"client_id"     env:"AUTH_OIDC_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"AUTH_OIDC_CLIENT_SECRET"`
	CallbackURL  string `yaml:"callback_url"  env:"AUTH_OIDC_CALLBACK_URL"`
}

// CacheConfig holds the in-process cache settings.
type CacheConfig struct {
	SlidingWindow time.Duration `yaml:"sliding_window" env:"CACHE_SLIDING_WINDOW" env-default:"300s"`
	RoleTTL       time.Duration `yaml:"role_ttl"       env:"CACHE_ROLE_TTL"       env-default:"10m"`
	MaxEntries    int           `yaml:"max_entries"    env:"CACHE_MAX_ENTRIES"    env-default:"1024"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuditConfig holds audit settings. An empty IgnorePaths keeps the built-in
// ignore list.
type AuditConfig struct {
	IgnorePaths []string `yaml:"ignore_paths" env:"AUDIT_IGNORE_PATHS" env-separator:","`
}
