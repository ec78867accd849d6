// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pvidigal/agromarket/internal/backend"
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	entrypoint "github.com/pvidigal/agromarket/internal/platform/cmd"
	"github.com/pvidigal/agromarket/internal/platform/timeouts"
	"github.com/pvidigal/agromarket/internal/session"
	"github.com/pvidigal/agromarket/internal/web"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/storage/sqlite"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr       string `env:"AGROMARKET_WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	BackendBaseURL string `env:"AGROMARKET_WEB_BACKEND_URL" envDefault:"http://localhost:8080"`
	AuthLoginURL   string `env:"AGROMARKET_WEB_AUTH_LOGIN_URL" envDefault:"http://localhost:8080/auth/login"`
	DBPath         string `env:"AGROMARKET_WEB_DB_PATH" envDefault:"agromarket-web.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend-url", cfg.BackendBaseURL, "Marketplace backend base URL")
	fs.StringVar(&cfg.AuthLoginURL, "auth-login-url", cfg.AuthLoginURL, "Backend auth flow URL for login redirects")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for viewer-local state")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// marketplaceGateway joins the backend list client with the transition
// gateway so the web modules see one surface.
type marketplaceGateway struct {
	client *backend.Client
	guard  *backend.Gateway
}

func (g marketplaceGateway) ListMine(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error) {
	return g.client.ListMine(ctx, token, kind)
}

func (g marketplaceGateway) ListReceived(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error) {
	return g.client.ListReceived(ctx, token, kind)
}

func (g marketplaceGateway) Transition(ctx context.Context, token string, kind lifecycle.Kind, request lifecycle.Request, action lifecycle.Action, currentUserID string) (backend.Outcome, error) {
	return g.guard.Transition(ctx, token, kind, request, action, currentUserID)
}

// Run starts the browser-facing marketplace service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		sessionCfg, err := session.LoadConfigFromEnv(time.Now)
		if err != nil {
			return fmt.Errorf("load session config: %w", err)
		}
		verifier, err := session.NewVerifier(sessionCfg)
		if err != nil {
			return fmt.Errorf("init session verifier: %w", err)
		}
		resolveViewer := authctx.SessionViewer(func(_ context.Context, token string) (string, error) {
			identity, err := verifier.Verify(token)
			if err != nil {
				return "", err
			}
			return identity.UserID, nil
		})

		client, err := backend.NewClient(cfg.BackendBaseURL, &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeouts.BackendRequest,
		})
		if err != nil {
			return fmt.Errorf("init backend client: %w", err)
		}
		gateway := marketplaceGateway{client: client, guard: backend.NewGateway(client)}

		favorites, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open favorites store: %w", err)
		}
		defer func() { _ = favorites.Close() }()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			AuthLoginURL:  cfg.AuthLoginURL,
			Gateway:       gateway,
			ResolveViewer: resolveViewer,
			Favorites:     favorites,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
