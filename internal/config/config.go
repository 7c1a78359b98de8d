package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/prismaglow/chatproxy/internal/provider/openai"
)

// Config represents the proxy configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	OpenAI openai.Config
	Proxy  ProxyConfig
	Auth   AuthConfig
	Store  StoreConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// ProxyConfig contains upstream call tagging and streaming settings.
type ProxyConfig struct {
	RequestTags         []string `env:"OPENAI_REQUEST_TAGS"        envSeparator:","`
	QuotaTag            string   `env:"OPENAI_REQUEST_QUOTA_TAG"`
	DebugLogging        bool     `env:"OPENAI_DEBUG_LOGGING"       envDefault:"true"`
	HeartbeatIntervalMs int      `env:"OPENAI_STREAM_HEARTBEAT_MS" envDefault:"15000"`
}

// AuthConfig contains session verification settings. Sessions live in Redis
// when REDIS_ADDR is set; AUTH_STATIC_TOKENS is the development fallback.
type AuthConfig struct {
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"           envDefault:"0"`
	SessionPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"session:"`
	StaticTokens  string `env:"AUTH_STATIC_TOKENS"`
}

// StoreConfig contains the row-store settings.
type StoreConfig struct {
	Path string `env:"AUDIT_DB_PATH" envDefault:"chatproxy.db"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*openai.Config
	*ProxyConfig
	*AuthConfig
	*StoreConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.OpenAI,
		&cfg.Proxy,
		&cfg.Auth,
		&cfg.Store,
	}
}
