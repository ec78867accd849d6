package requests

import (
	"context"
	"net/http"
	"strings"

	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/platform/flash"
	"github.com/pvidigal/agromarket/internal/web/platform/htmx"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
	"github.com/pvidigal/agromarket/internal/web/platform/weberror"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

func (f *Feature) handlePage(w http.ResponseWriter, r *http.Request) {
	viewer, ok := f.resolveViewerFor(r)
	if !ok {
		redirectToLogin(w, r)
		return
	}

	view := normalizeView(r.URL.Query().Get(routepath.ViewQueryKey))
	list, err := f.loadList(r.Context(), viewer.Token, view)
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}

	loc, lang := i18n.ResolveLocalizer(w, r)
	notice, hasNotice := flash.ReadAndClear(w, r)

	fragment := templates.RequestsPage(f.tabs(view), f.listProps(list, viewer, view), loc)
	options := templates.AppLayoutOptions{
		Title:         templates.T(loc, f.config.TitleKey),
		Lang:          lang,
		Loc:           loc,
		Authenticated: true,
		Nav:           f.config.Nav,
	}
	if hasNotice {
		options.Flash = &notice
	}
	htmx.RenderPage(w, r, fragment, templates.AppLayout(options, fragment))
}

func (f *Feature) resolveViewerFor(r *http.Request) (authctx.Viewer, bool) {
	if f.resolveViewer == nil {
		return authctx.Viewer{}, false
	}
	return f.resolveViewer(r)
}

func (f *Feature) loadList(ctx context.Context, token string, view string) ([]lifecycle.Request, error) {
	if view == routepath.ViewReceived {
		return f.gateway.ListReceived(ctx, token, f.config.Kind)
	}
	return f.gateway.ListMine(ctx, token, f.config.Kind)
}

func (f *Feature) conventionFor(view string) reconcile.Convention {
	if view == routepath.ViewReceived {
		return f.config.ReceivedConvention
	}
	return f.config.MineConvention
}

func (f *Feature) tabs(view string) []templates.Tab {
	return []templates.Tab{
		{
			LabelKey: "tab.requests.mine",
			URL:      routepath.VerticalView(f.config.Slug, routepath.ViewMine),
			Active:   view == routepath.ViewMine,
		},
		{
			LabelKey: "tab.requests.received",
			URL:      routepath.VerticalView(f.config.Slug, routepath.ViewReceived),
			Active:   view == routepath.ViewReceived,
		},
	}
}

// listProps builds the render state for a list snapshot. Action buttons are
// derived from the transition table for the viewer's resolved role, so the
// UI can never offer an action the gateway would refuse.
func (f *Feature) listProps(list []lifecycle.Request, viewer authctx.Viewer, view string) templates.RequestListProps {
	props := templates.RequestListProps{
		ListID: f.config.Slug + "-requests",
		Cards:  make([]templates.RequestCardProps, 0, len(list)),
	}
	for _, request := range list {
		role := lifecycle.ResolveRole(request, viewer.UserID)
		card := templates.RequestCardProps{
			EntityID:    request.ID,
			Status:      request.Status,
			Role:        role,
			ResourceRef: request.ResourceRef,
			CreatedAt:   request.CreatedAt,
		}
		busy := f.tracker.Busy(request.ID)
		armedID, armed := f.guards.guardFor(viewer.UserID).Armed()
		for _, action := range lifecycle.Actions(f.config.Kind, request.Status, role) {
			danger := action == lifecycle.ActionCancel || action == lifecycle.ActionReject
			card.Actions = append(card.Actions, templates.ActionButton{
				Action:   action,
				LabelKey: templates.ActionLabelKey(action),
				URL:      f.actionURL(request.ID, action, view),
				Danger:   danger,
				Armed:    action == lifecycle.ActionCancel && armed && armedID == request.ID,
				Disabled: busy,
			})
		}
		props.Cards = append(props.Cards, card)
	}
	return props
}

func (f *Feature) actionURL(entityID int64, action lifecycle.Action, view string) string {
	return routepath.RequestAction(f.config.Slug, entityID, string(action)) +
		"?" + routepath.ViewQueryKey + "=" + view
}

func normalizeView(raw string) string {
	if strings.TrimSpace(raw) == routepath.ViewReceived {
		return routepath.ViewReceived
	}
	return routepath.ViewMine
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
}
