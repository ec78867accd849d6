package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
)

// FavoriteItemProps holds the render state for one saved listing.
type FavoriteItemProps struct {
	ListingID string
	ToggleURL string
}

// FavoritesList renders the viewer's saved listings with remove toggles.
func FavoritesList(items []FavoriteItemProps, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section id="favorites" class="favorites-list">`); err != nil {
			return err
		}
		if len(items) == 0 {
			if err := EmptyState(loc).Render(ctx, w); err != nil {
				return err
			}
		}
		for _, item := range items {
			if err := write(w,
				`<article class="favorite-card" data-listing-id="`, esc(item.ListingID), `">`,
				`<span class="listing-id">`, esc(item.ListingID), `</span>`,
				`<form method="post" action="`, esc(item.ToggleURL), `" hx-post="`, esc(item.ToggleURL), `" hx-target="#favorites" hx-swap="outerHTML">`,
				`<button type="submit" class="action-btn action-danger">`, esc(T(loc, "action.remove_favorite")), "</button>",
				"</form>",
				"</article>",
			); err != nil {
				return err
			}
		}
		return write(w, "</section>")
	})
}
