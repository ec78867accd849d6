// Package templates renders the marketplace web UI.
//
// Components are plain templ.ComponentFunc values so handlers can compose
// full pages and HTMX fragments from the same building blocks.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pvidigal/agromarket/internal/web/platform/flash"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
)

// AppName is the brand name rendered in the chrome and page titles.
const AppName = "AgroMarket"

// ComposePageTitle appends the brand suffix unless already present.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return AppName
	}
	if strings.HasSuffix(title, "| "+AppName) {
		return title
	}
	return title + " | " + AppName
}

// T localizes a key, falling back to the key itself without a localizer.
func T(loc i18n.Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

func write(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func esc(value string) string {
	return html.EscapeString(value)
}

// NavItem is one entry in the vertical navigation.
type NavItem struct {
	// LabelKey is the localization key for the visible label.
	LabelKey string
	// URL is the navigation target.
	URL string
	// Active marks the current section.
	Active bool
}

// AppLayoutOptions configures the full-page chrome.
type AppLayoutOptions struct {
	Title         string
	Lang          string
	Loc           i18n.Localizer
	Authenticated bool
	Nav           []NavItem
	Flash         *flash.Notice
}

// AppLayout renders the HTML shell around a page fragment.
func AppLayout(options AppLayoutOptions, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(options.Lang)
		if lang == "" {
			lang = "en"
		}
		if err := write(w,
			"<!DOCTYPE html>",
			`<html lang="`, esc(lang), `">`,
			"<head>",
			`<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			"<title>", esc(ComposePageTitle(options.Title)), "</title>",
			`<link rel="stylesheet" href="/static/app.css">`,
			`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`,
			"</head>",
			`<body>`,
			`<header class="app-header"><a class="brand" href="/">`, esc(AppName), `</a>`,
		); err != nil {
			return err
		}
		if len(options.Nav) > 0 {
			if err := write(w, `<nav class="app-nav"><ul>`); err != nil {
				return err
			}
			for _, item := range options.Nav {
				class := ""
				if item.Active {
					class = ` class="active"`
				}
				if err := write(w, "<li", class, `><a href="`, esc(item.URL), `">`, esc(T(options.Loc, item.LabelKey)), "</a></li>"); err != nil {
					return err
				}
			}
			if err := write(w, "</ul></nav>"); err != nil {
				return err
			}
		}
		if err := write(w, "</header>"); err != nil {
			return err
		}
		if options.Flash != nil {
			if err := FlashBanner(*options.Flash, options.Loc).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := write(w, `<main id="main">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, "</main></body></html>")
	})
}

// FlashBanner renders a one-time notice banner.
func FlashBanner(notice flash.Notice, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div class="flash flash-`, esc(string(notice.Kind)), `" role="status">`,
			esc(T(loc, notice.Key)),
			"</div>",
		)
	})
}

// EmptyState renders the shared empty-list message.
func EmptyState(loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<p class="empty-state">`, esc(T(loc, "list.empty")), "</p>")
	})
}

// Tab is one entry in a mine/received tab bar.
type Tab struct {
	LabelKey string
	URL      string
	Active   bool
}

// TabBar renders a tab bar above a request list.
func TabBar(tabs []Tab, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := write(w, `<nav class="tab-bar">`); err != nil {
			return err
		}
		for _, tab := range tabs {
			class := "tab"
			if tab.Active {
				class = "tab tab-active"
			}
			if err := write(w, `<a class="`, class, `" href="`, esc(tab.URL), `">`, esc(T(loc, tab.LabelKey)), "</a>"); err != nil {
				return err
			}
		}
		return write(w, "</nav>")
	})
}

func formatEntityID(id int64) string {
	return fmt.Sprintf("%d", id)
}
