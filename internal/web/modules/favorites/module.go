// Package favorites serves the viewer's saved listings page.
//
// Favorites are derived, service-local state. The backend stays the source
// of truth for listings; this module only remembers which ones the viewer
// starred.
package favorites

import (
	"net/http"

	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
	module "github.com/pvidigal/agromarket/internal/web/module"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/platform/flash"
	"github.com/pvidigal/agromarket/internal/web/platform/htmx"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
	"github.com/pvidigal/agromarket/internal/web/platform/weberror"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/storage"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

// Module is the favorites page over a FavoriteStore.
type Module struct {
	store storage.FavoriteStore
	nav   []templates.NavItem
}

// New creates the favorites module.
func New(store storage.FavoriteStore, nav []templates.NavItem) *Module {
	return &Module{store: store, nav: nav}
}

// ID returns the module identifier.
func (m *Module) ID() string { return "favorites" }

// Healthy reports whether the favorites store is configured.
func (m *Module) Healthy() bool { return m != nil && m.store != nil }

// Mount returns the module route mount. The mount does not resolve viewers
// itself; the server wraps it with the protected-route auth seam and stores
// the viewer on the request context.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.AppFavorites, m.handlePage)
	mux.HandleFunc("POST "+routepath.AppFavoriteTogglePattern, m.handleToggle)
	return module.Mount{Prefix: routepath.AppFavorites, Handler: mux}, nil
}

func (m *Module) handlePage(w http.ResponseWriter, r *http.Request) {
	viewer, ok := authctx.ViewerFrom(r.Context())
	if !ok {
		http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
		return
	}
	if m.store == nil {
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindUnavailable, "error.backend.unavailable", "favorites store is not configured"))
		return
	}

	listings, err := m.store.ListFavorites(r.Context(), viewer.UserID)
	if err != nil {
		weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "list favorites", err))
		return
	}

	loc, lang := i18n.ResolveLocalizer(w, r)
	notice, hasNotice := flash.ReadAndClear(w, r)

	fragment := templates.FavoritesList(m.items(listings), loc)
	options := templates.AppLayoutOptions{
		Title:         templates.T(loc, "page.favorites.title"),
		Lang:          lang,
		Loc:           loc,
		Authenticated: true,
		Nav:           m.nav,
	}
	if hasNotice {
		options.Flash = &notice
	}
	htmx.RenderPage(w, r, fragment, templates.AppLayout(options, fragment))
}

func (m *Module) handleToggle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := authctx.ViewerFrom(r.Context())
	if !ok {
		http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
		return
	}
	listingID := r.PathValue("listingID")
	if listingID == "" {
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.request.invalid", "missing listing id"))
		return
	}

	saved, err := m.store.IsFavorite(r.Context(), viewer.UserID, listingID)
	if err != nil {
		weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "check favorite", err))
		return
	}

	noticeKey := "flash.favorite.saved"
	if saved {
		err = m.store.RemoveFavorite(r.Context(), viewer.UserID, listingID)
		noticeKey = "flash.favorite.removed"
	} else {
		err = m.store.SaveFavorite(r.Context(), viewer.UserID, listingID)
	}
	if err != nil {
		weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "toggle favorite", err))
		return
	}

	if htmx.IsHTMXRequest(r) {
		listings, err := m.store.ListFavorites(r.Context(), viewer.UserID)
		if err != nil {
			weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "list favorites", err))
			return
		}
		loc, _ := i18n.ResolveLocalizer(w, r)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := templates.FavoritesList(m.items(listings), loc).Render(r.Context(), w); err != nil {
			weberror.WriteError(w, r, err)
		}
		return
	}

	flash.Write(w, r, flash.NoticeSuccess(noticeKey))
	http.Redirect(w, r, routepath.AppFavorites, http.StatusSeeOther)
}

func (m *Module) items(listings []string) []templates.FavoriteItemProps {
	items := make([]templates.FavoriteItemProps, 0, len(listings))
	for _, listingID := range listings {
		items = append(items, templates.FavoriteItemProps{
			ListingID: listingID,
			ToggleURL: routepath.FavoriteToggle(listingID),
		})
	}
	return items
}
