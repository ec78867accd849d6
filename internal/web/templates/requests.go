package templates

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
)

// ActionButton describes one lifecycle action rendered on a request card.
type ActionButton struct {
	// Action is the lifecycle action this button triggers.
	Action lifecycle.Action
	// LabelKey localizes the button label.
	LabelKey string
	// URL is the POST target for the action.
	URL string
	// Danger renders destructive styling.
	Danger bool
	// Armed shows the press-again confirmation hint.
	Armed bool
	// Disabled blocks the button while another action is in flight.
	Disabled bool
}

// RequestCardProps holds the render state for one request.
type RequestCardProps struct {
	EntityID    int64
	Status      lifecycle.Status
	Role        lifecycle.Role
	ResourceRef string
	CreatedAt   time.Time
	Actions     []ActionButton
}

// RequestListProps holds the render state for a request list fragment.
type RequestListProps struct {
	// ListID is the DOM id used as the HTMX swap target.
	ListID string
	Cards  []RequestCardProps
}

// StatusLabelKey maps a lifecycle status to its localization key.
func StatusLabelKey(status lifecycle.Status) string {
	return "status." + strings.ToLower(string(status))
}

// ActionLabelKey maps a lifecycle action to its localization key.
func ActionLabelKey(action lifecycle.Action) string {
	return "action." + strings.ToLower(string(action))
}

// StatusBadge renders a status pill.
func StatusBadge(status lifecycle.Status, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "badge badge-" + strings.ToLower(string(status))
		return write(w, `<span class="`, esc(class), `">`, esc(T(loc, StatusLabelKey(status))), "</span>")
	})
}

// RequestCard renders one request with its status and available actions.
func RequestCard(props RequestCardProps, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := formatEntityID(props.EntityID)
		if err := write(w, `<article class="request-card" data-entity-id="`, esc(id), `">`); err != nil {
			return err
		}
		if err := write(w, `<div class="request-card-head"><span class="resource-ref">`, esc(props.ResourceRef), `</span>`); err != nil {
			return err
		}
		if err := StatusBadge(props.Status, loc).Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, "</div>"); err != nil {
			return err
		}
		if !props.CreatedAt.IsZero() {
			if err := write(w, `<time datetime="`, esc(props.CreatedAt.Format(time.RFC3339)), `">`, esc(props.CreatedAt.Format("2006-01-02")), "</time>"); err != nil {
				return err
			}
		}
		if len(props.Actions) > 0 {
			if err := write(w, `<div class="request-actions">`); err != nil {
				return err
			}
			for _, action := range props.Actions {
				if err := actionForm(w, action, loc); err != nil {
					return err
				}
			}
			if err := write(w, "</div>"); err != nil {
				return err
			}
		}
		return write(w, "</article>")
	})
}

func actionForm(w io.Writer, action ActionButton, loc i18n.Localizer) error {
	class := "action-btn"
	if action.Danger {
		class += " action-danger"
	}
	if action.Armed {
		class += " action-armed"
	}
	disabled := ""
	if action.Disabled {
		disabled = " disabled"
	}
	if err := write(w,
		`<form method="post" action="`, esc(action.URL), `" hx-post="`, esc(action.URL), `" hx-target="closest .request-list" hx-swap="outerHTML">`,
		`<button type="submit" class="`, esc(class), `"`, disabled, ">",
		esc(T(loc, action.LabelKey)),
		"</button>",
	); err != nil {
		return err
	}
	if action.Armed {
		if err := write(w, `<span class="confirm-hint">`, esc(T(loc, "action.confirm_hint")), "</span>"); err != nil {
			return err
		}
	}
	return write(w, "</form>")
}

// Group renders components in sequence.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// RequestsPage renders the tab bar and request list for a vertical page.
func RequestsPage(tabs []Tab, list RequestListProps, loc i18n.Localizer) templ.Component {
	return Group(TabBar(tabs, loc), RequestList(list, loc))
}

// RequestList renders the swap-able request list fragment.
func RequestList(props RequestListProps, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		listID := strings.TrimSpace(props.ListID)
		if listID == "" {
			listID = "request-list"
		}
		if err := write(w, `<section id="`, esc(listID), `" class="request-list">`); err != nil {
			return err
		}
		if len(props.Cards) == 0 {
			if err := EmptyState(loc).Render(ctx, w); err != nil {
				return err
			}
		}
		for _, card := range props.Cards {
			if err := RequestCard(card, loc).Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, "</section>")
	})
}
