// Package land serves the land-lease request pages.
package land

import (
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	"github.com/pvidigal/agromarket/internal/web/feature/requests"
	module "github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Module is the land-lease vertical.
type Module struct {
	feature *requests.Feature
}

// New creates the land module over the shared requests feature.
func New(gateway requests.Gateway, resolveViewer authctx.ResolveViewer, nav []templates.NavItem) *Module {
	return &Module{
		feature: requests.New(requests.Config{
			Kind:               lifecycle.KindLease,
			Slug:               "land",
			TitleKey:           "page.land.title",
			MineConvention:     reconcile.DropCanceled,
			ReceivedConvention: reconcile.KeepTerminal,
			Nav:                nav,
		}, gateway, resolveViewer),
	}
}

// ID returns the module identifier.
func (m *Module) ID() string { return "land" }

// Mount returns the module route mount.
func (m *Module) Mount() (module.Mount, error) {
	return module.Mount{Prefix: routepath.AppLand, Handler: m.feature.Routes()}, nil
}

// Healthy reports whether the backing gateway is configured.
func (m *Module) Healthy() bool { return m != nil && m.feature.Healthy() }
