package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/prismaglow/chatproxy/internal/audit"
	"github.com/prismaglow/chatproxy/internal/auth"
	"github.com/prismaglow/chatproxy/internal/config"
	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/httpserver"
	"github.com/prismaglow/chatproxy/internal/httpserver/middleware"
	"github.com/prismaglow/chatproxy/internal/observability"
	"github.com/prismaglow/chatproxy/internal/provider/echo"
	"github.com/prismaglow/chatproxy/internal/provider/openai"
	"github.com/prismaglow/chatproxy/internal/store/sqlite"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Row store: tenant directory + debug-event audit trail
	if err := container.Provide(func(cfg *config.StoreConfig) (*sqlite.Store, error) {
		return sqlite.Open(cfg.Path)
	}); err != nil {
		log.Fatalf("Failed to provide store: %v", err)
	}
	if err := container.Provide(func(store *sqlite.Store) domain.Directory {
		return store
	}); err != nil {
		log.Fatalf("Failed to provide directory: %v", err)
	}
	if err := container.Provide(func(store *sqlite.Store, cfg *config.ProxyConfig) domain.DebugRecorder {
		return audit.NewRecorder(store, cfg.DebugLogging)
	}); err != nil {
		log.Fatalf("Failed to provide debug recorder: %v", err)
	}

	// Session verification: Redis when configured, static tokens otherwise
	if err := container.Provide(func(cfg *config.AuthConfig) auth.Verifier {
		if cfg.RedisAddr == "" {
			return auth.NewStaticVerifier(cfg.StaticTokens)
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return auth.NewRedisSessionStore(client, cfg.SessionPrefix)
	}); err != nil {
		log.Fatalf("Failed to provide session verifier: %v", err)
	}

	// Completion provider: OpenAI when an API key is set, echo fallback for
	// local development
	if err := container.Provide(func(cfg *openai.Config) (domain.CompletionAPI, error) {
		if cfg.APIKey == "" {
			return echo.NewProvider(), nil
		}
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide completion provider: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(cfg *config.ProxyConfig) domain.RequestDefaults {
		return domain.RequestDefaults{
			Tags:     cfg.RequestTags,
			QuotaTag: cfg.QuotaTag,
		}
	}); err != nil {
		log.Fatalf("Failed to provide request defaults: %v", err)
	}
	if err := container.Provide(domain.NewGatewayService); err != nil {
		log.Fatalf("Failed to provide gateway service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
