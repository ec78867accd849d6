// Package delivery serves the carrier delivery-booking pages.
//
// Delivery is the only vertical with a post-acceptance tail: the carrier
// marks an accepted booking IN_TRANSIT and then DELIVERED, and the sender
// can still cancel an accepted booking before transit starts.
package delivery

import (
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	"github.com/pvidigal/agromarket/internal/web/feature/requests"
	module "github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Module is the delivery vertical.
type Module struct {
	feature *requests.Feature
}

// New creates the delivery module over the shared requests feature.
func New(gateway requests.Gateway, resolveViewer authctx.ResolveViewer, nav []templates.NavItem) *Module {
	return &Module{
		feature: requests.New(requests.Config{
			Kind:               lifecycle.KindDelivery,
			Slug:               "delivery",
			TitleKey:           "page.delivery.title",
			MineConvention:     reconcile.DropCanceled,
			ReceivedConvention: reconcile.KeepTerminal,
			Nav:                nav,
		}, gateway, resolveViewer),
	}
}

// ID returns the module identifier.
func (m *Module) ID() string { return "delivery" }

// Mount returns the module route mount.
func (m *Module) Mount() (module.Mount, error) {
	return module.Mount{Prefix: routepath.AppDelivery, Handler: m.feature.Routes()}, nil
}

// Healthy reports whether the backing gateway is configured.
func (m *Module) Healthy() bool { return m != nil && m.feature.Healthy() }
