// Package requests implements the shared request-list page feature.
//
// All four marketplace verticals are configurations of this one feature:
// a list page with sent/received tabs, lifecycle action buttons scoped to
// the viewer's role, optimistic list reconciliation against the backend
// response, a double-confirm guard on cancel, and a per-entity in-flight
// gate so a request can carry at most one pending action at a time.
package requests

import (
	"context"
	"net/http"
	"sync"

	"github.com/pvidigal/agromarket/internal/backend"
	"github.com/pvidigal/agromarket/internal/marketplace/confirm"
	"github.com/pvidigal/agromarket/internal/marketplace/inflight"
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Gateway is the backend surface this feature depends on.
type Gateway interface {
	ListMine(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error)
	ListReceived(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error)
	Transition(ctx context.Context, token string, kind lifecycle.Kind, request lifecycle.Request, action lifecycle.Action, currentUserID string) (backend.Outcome, error)
}

// Config shapes one vertical's rendition of the shared feature.
type Config struct {
	// Kind is the request kind this vertical manages.
	Kind lifecycle.Kind
	// Slug is the URL segment under /app/.
	Slug string
	// TitleKey localizes the page title.
	TitleKey string
	// MineConvention reconciles the sent list after a transition.
	MineConvention reconcile.Convention
	// ReceivedConvention reconciles the received list after a transition.
	ReceivedConvention reconcile.Convention
	// Nav is the chrome navigation with this vertical marked active.
	Nav []templates.NavItem
}

// Feature serves the request-list pages and action endpoints for one vertical.
type Feature struct {
	config        Config
	gateway       Gateway
	resolveViewer authctx.ResolveViewer
	tracker       *inflight.Tracker
	guards        *guardRegistry
}

// New creates the feature for one vertical configuration.
func New(config Config, gateway Gateway, resolveViewer authctx.ResolveViewer) *Feature {
	return &Feature{
		config:        config,
		gateway:       gateway,
		resolveViewer: resolveViewer,
		tracker:       inflight.NewTracker(),
		guards:        newGuardRegistry(confirm.NewGuard),
	}
}

// Routes returns the mux serving this vertical's page and actions.
func (f *Feature) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.VerticalPage(f.config.Slug), f.handlePage)
	mux.HandleFunc("POST "+routepath.RequestActionPattern(f.config.Slug), f.handleAction)
	return mux
}

// Healthy reports whether the backend gateway is configured.
func (f *Feature) Healthy() bool {
	return f != nil && f.gateway != nil
}

// guardRegistry keeps one confirm guard per viewer so one user arming a
// cancel never leaks confirmation state into another session.
type guardRegistry struct {
	mu       sync.Mutex
	guards   map[string]*confirm.Guard
	newGuard func() *confirm.Guard
}

func newGuardRegistry(newGuard func() *confirm.Guard) *guardRegistry {
	return &guardRegistry{
		guards:   make(map[string]*confirm.Guard),
		newGuard: newGuard,
	}
}

func (g *guardRegistry) guardFor(viewerID string) *confirm.Guard {
	g.mu.Lock()
	defer g.mu.Unlock()
	guard, ok := g.guards[viewerID]
	if !ok {
		guard = g.newGuard()
		g.guards[viewerID] = guard
	}
	return guard
}
