// Package produce serves the produce purchase-request pages.
//
// Buyers initiate purchase requests against farm listings; farmers accept
// or reject them. Rejected purchases stay visible on the buyer's list so
// the outcome is not silently swallowed.
package produce

import (
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	"github.com/pvidigal/agromarket/internal/web/feature/requests"
	module "github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Module is the produce vertical.
type Module struct {
	feature *requests.Feature
}

// New creates the produce module over the shared requests feature.
func New(gateway requests.Gateway, resolveViewer authctx.ResolveViewer, nav []templates.NavItem) *Module {
	return &Module{
		feature: requests.New(requests.Config{
			Kind:               lifecycle.KindPurchase,
			Slug:               "produce",
			TitleKey:           "page.produce.title",
			MineConvention:     reconcile.DropCanceled,
			ReceivedConvention: reconcile.KeepTerminal,
			Nav:                nav,
		}, gateway, resolveViewer),
	}
}

// ID returns the module identifier.
func (m *Module) ID() string { return "produce" }

// Mount returns the module route mount.
func (m *Module) Mount() (module.Mount, error) {
	return module.Mount{Prefix: routepath.AppProduce, Handler: m.feature.Routes()}, nil
}

// Healthy reports whether the backing gateway is configured.
func (m *Module) Healthy() bool { return m != nil && m.feature.Healthy() }
