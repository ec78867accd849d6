// Package web hosts the browser-facing marketplace service.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/pvidigal/agromarket/internal/platform/timeouts"
	"github.com/pvidigal/agromarket/internal/web/feature/requests"
	"github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/modules"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/platform/sessioncookie"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/static"
	"github.com/pvidigal/agromarket/internal/web/storage"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config defines the inputs for the web server.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// AuthLoginURL is the backend auth flow users are sent to on login.
	AuthLoginURL string
	// Gateway serves marketplace list and transition calls.
	Gateway requests.Gateway
	// ResolveViewer authenticates requests from the session cookie.
	ResolveViewer authctx.ResolveViewer
	// Favorites stores saved listings per user.
	Favorites storage.FavoriteStore
}

// Server hosts the web client HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("backend gateway is required")
	}
	if cfg.ResolveViewer == nil {
		return nil, errors.New("viewer resolver is required")
	}

	protected := modules.DefaultProtectedModules(modules.Dependencies{
		Gateway:       cfg.Gateway,
		ResolveViewer: cfg.ResolveViewer,
		Favorites:     cfg.Favorites,
	})

	root := http.NewServeMux()
	seen := make(map[string]string)
	withViewer := viewerMiddleware(cfg.ResolveViewer)
	for _, feature := range protected {
		if feature == nil {
			return nil, errors.New("protected module is nil")
		}
		mount, err := feature.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" || mount.Handler == nil {
			return nil, fmt.Errorf("module %q has an empty mount", feature.ID())
		}
		if owner, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by %q", feature.ID(), prefix, owner)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, withViewer(mount.Handler))
		root.Handle(prefix+"/", withViewer(mount.Handler))
	}

	assets, err := fs.Sub(static.FS, "assets")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	root.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))

	root.HandleFunc("GET "+routepath.Health, healthHandler(protected))
	root.HandleFunc("GET "+routepath.Login, loginHandler(cfg.AuthLoginURL))
	root.HandleFunc("POST "+routepath.Logout, logoutHandler())
	root.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.AppProduce, http.StatusSeeOther)
	})

	return otelhttp.NewHandler(root, "web"), nil
}

// viewerMiddleware resolves the viewer once per request and stores the
// result on the context for handlers that read identity from there.
func viewerMiddleware(resolve authctx.ResolveViewer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if viewer, ok := resolve(r); ok {
				r = r.WithContext(authctx.WithViewer(r.Context(), viewer))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// healthHandler reports ready only when every module reports healthy.
func healthHandler(features []modules.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, feature := range features {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				http.Error(w, feature.ID()+" unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// loginHandler forwards to the backend auth flow. The web client never
// issues credentials itself.
func loginHandler(authLoginURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := strings.TrimSpace(authLoginURL)
		if target == "" {
			http.Error(w, "login is not configured", http.StatusServiceUnavailable)
			return
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// logoutHandler clears the session cookie and returns to the landing page.
func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessioncookie.Clear(w, r)
		http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
	}
}

// NewServer builds a configured web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without waiting for in-flight requests.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
