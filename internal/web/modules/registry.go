// Package modules composes the default web module registry.
package modules

import (
	"github.com/pvidigal/agromarket/internal/web/feature/requests"
	module "github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/modules/delivery"
	"github.com/pvidigal/agromarket/internal/web/modules/equipment"
	"github.com/pvidigal/agromarket/internal/web/modules/favorites"
	"github.com/pvidigal/agromarket/internal/web/modules/land"
	"github.com/pvidigal/agromarket/internal/web/modules/produce"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the collaborators required to compose the module
// registry. The gateway field is typed as the narrow interface defined by
// the requests feature, so modules physically cannot reach past it.
type Dependencies struct {
	Gateway       requests.Gateway
	ResolveViewer authctx.ResolveViewer
	Favorites     storage.FavoriteStore
}

// DefaultProtectedModules returns the authenticated marketplace modules.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		produce.New(deps.Gateway, deps.ResolveViewer, Nav("produce")),
		delivery.New(deps.Gateway, deps.ResolveViewer, Nav("delivery")),
		equipment.New(deps.Gateway, deps.ResolveViewer, Nav("equipment")),
		land.New(deps.Gateway, deps.ResolveViewer, Nav("land")),
		favorites.New(deps.Favorites, Nav("")),
	}
}
