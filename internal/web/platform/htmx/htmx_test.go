package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(plain) {
		t.Fatalf("expected plain request to not be HTMX")
	}

	partial := httptest.NewRequest(http.MethodGet, "/", nil)
	partial.Header.Set(RequestHeaderKey, "true")
	if !IsHTMXRequest(partial) {
		t.Fatalf("expected HTMX request to be detected")
	}

	cased := httptest.NewRequest(http.MethodGet, "/", nil)
	cased.Header.Set(RequestHeaderKey, "True")
	if !IsHTMXRequest(cased) {
		t.Fatalf("expected case-insensitive header match")
	}
}

func TestRenderPageFullForPlainRequest(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	RenderPage(w, r, textComponent("fragment"), textComponent("full"))

	if body := w.Body.String(); !strings.Contains(body, "full") {
		t.Fatalf("body = %q, want full page", body)
	}
}

func TestRenderPageFragmentForHTMXRequest(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestHeaderKey, "true")
	RenderPage(w, r, textComponent("fragment"), textComponent("full"))

	if body := w.Body.String(); !strings.Contains(body, "fragment") {
		t.Fatalf("body = %q, want fragment", body)
	}
}

func TestRenderPageFallsBackWhenFragmentMissing(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestHeaderKey, "true")
	RenderPage(w, r, nil, textComponent("full"))

	if body := w.Body.String(); !strings.Contains(body, "full") {
		t.Fatalf("body = %q, want full page fallback", body)
	}
}
