package requests

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pvidigal/agromarket/internal/marketplace/confirm"
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/marketplace/reconcile"
	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
	"github.com/pvidigal/agromarket/internal/web/platform/authctx"
	"github.com/pvidigal/agromarket/internal/web/platform/flash"
	"github.com/pvidigal/agromarket/internal/web/platform/htmx"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
	"github.com/pvidigal/agromarket/internal/web/platform/weberror"
	"github.com/pvidigal/agromarket/internal/web/routepath"
	"github.com/pvidigal/agromarket/internal/web/templates"
)

func (f *Feature) handleAction(w http.ResponseWriter, r *http.Request) {
	viewer, ok := f.resolveViewerFor(r)
	if !ok {
		if htmx.IsHTMXRequest(r) {
			weberror.WriteError(w, r, apperrors.EK(apperrors.KindUnauthorized, "error.auth.required", "no validated session"))
			return
		}
		redirectToLogin(w, r)
		return
	}

	entityID, err := strconv.ParseInt(r.PathValue("entityID"), 10, 64)
	if err != nil {
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.request.invalid", "malformed entity id"))
		return
	}
	action, ok := parseAction(r.PathValue("action"))
	if !ok {
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.request.invalid", "unknown action"))
		return
	}
	view := normalizeView(r.URL.Query().Get(routepath.ViewQueryKey))

	list, err := f.loadList(r.Context(), viewer.Token, view)
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}

	request, found := findRequest(list, entityID)
	if !found {
		notice := flash.NoticeInfo("flash.request.removed")
		f.finish(w, r, viewer, view, list, &notice)
		return
	}

	// Cancel is destructive: the first press arms the guard and the page
	// re-renders with a confirmation hint instead of calling the backend.
	if action == lifecycle.ActionCancel {
		if f.guards.guardFor(viewer.UserID).Trigger(entityID) == confirm.ResultArmed {
			f.finish(w, r, viewer, view, list, nil)
			return
		}
	}

	attempt, ok := f.tracker.Begin(entityID)
	if !ok {
		notice := flash.NoticeError("error.request.busy")
		f.finish(w, r, viewer, view, list, &notice)
		return
	}

	outcome, err := f.gateway.Transition(r.Context(), viewer.Token, f.config.Kind, request, action, viewer.UserID)
	fresh := f.tracker.Settle(entityID, attempt)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			list = reconcile.Remove(list, entityID)
			notice := flash.NoticeInfo("flash.request.removed")
			f.finish(w, r, viewer, view, list, &notice)
			return
		}
		key := apperrors.LocalizationKey(err)
		if key == "" {
			key = "error.backend.unavailable"
		}
		notice := flash.NoticeError(key)
		f.finish(w, r, viewer, view, list, &notice)
		return
	}

	if !fresh {
		// A later attempt already settled this entity; discard this result.
		f.finish(w, r, viewer, view, list, nil)
		return
	}

	list = reconcile.Apply(list, entityID, outcome.NewStatus, f.conventionFor(view))
	notice := flash.NoticeSuccess(successKey(action))
	f.finish(w, r, viewer, view, list, &notice)
}

// finish renders the updated list fragment for HTMX requests and redirects
// back to the list page otherwise, carrying the outcome as a flash notice.
func (f *Feature) finish(w http.ResponseWriter, r *http.Request, viewer authctx.Viewer, view string, list []lifecycle.Request, notice *flash.Notice) {
	if htmx.IsHTMXRequest(r) {
		loc, _ := i18n.ResolveLocalizer(w, r)
		var banner templ.Component
		if notice != nil {
			banner = templates.FlashBanner(*notice, loc)
		}
		fragment := templates.Group(banner, templates.RequestList(f.listProps(list, viewer, view), loc))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := fragment.Render(r.Context(), w); err != nil {
			weberror.WriteError(w, r, err)
		}
		return
	}
	if notice != nil {
		flash.Write(w, r, *notice)
	}
	http.Redirect(w, r, routepath.VerticalView(f.config.Slug, view), http.StatusSeeOther)
}

func findRequest(list []lifecycle.Request, entityID int64) (lifecycle.Request, bool) {
	for _, request := range list {
		if request.ID == entityID {
			return request, true
		}
	}
	return lifecycle.Request{}, false
}

func parseAction(raw string) (lifecycle.Action, bool) {
	action := lifecycle.Action(strings.ToUpper(strings.TrimSpace(raw)))
	switch action {
	case lifecycle.ActionAccept,
		lifecycle.ActionReject,
		lifecycle.ActionCancel,
		lifecycle.ActionStartTransit,
		lifecycle.ActionCompleteDelivery:
		return action, true
	}
	return "", false
}

func successKey(action lifecycle.Action) string {
	switch action {
	case lifecycle.ActionAccept:
		return "flash.request.accepted"
	case lifecycle.ActionReject:
		return "flash.request.rejected"
	case lifecycle.ActionCancel:
		return "flash.request.canceled"
	case lifecycle.ActionStartTransit:
		return "flash.request.transit_started"
	case lifecycle.ActionCompleteDelivery:
		return "flash.request.delivered"
	default:
		return "flash.request.accepted"
	}
}
