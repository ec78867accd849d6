package modules

import (
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Nav returns the vertical navigation with the given module slug active.
func Nav(activeSlug string) []templates.NavItem {
	entries := []struct {
		slug     string
		labelKey string
		url      string
	}{
		{"produce", "page.produce.title", routepath.AppProduce},
		{"delivery", "page.delivery.title", routepath.AppDelivery},
		{"equipment", "page.equipment.title", routepath.AppEquipment},
		{"land", "page.land.title", routepath.AppLand},
	}
	nav := make([]templates.NavItem, 0, len(entries))
	for _, entry := range entries {
		nav = append(nav, templates.NavItem{
			LabelKey: entry.labelKey,
			URL:      entry.url,
			Active:   entry.slug == activeSlug,
		})
	}
	return nav
}
