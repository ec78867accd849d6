package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Write(w, r, NoticeSuccess("flash.request.accepted"))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	clearer := httptest.NewRecorder()

	notice, ok := ReadAndClear(clearer, next)
	if !ok {
		t.Fatalf("expected flash notice")
	}
	if notice.Kind != KindSuccess {
		t.Fatalf("kind = %q, want %q", notice.Kind, KindSuccess)
	}
	if notice.Key != "flash.request.accepted" {
		t.Fatalf("key = %q, want %q", notice.Key, "flash.request.accepted")
	}

	cleared := clearer.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected flash cookie to be expired, got %+v", cleared)
	}
}

func TestReadAndClearMissingCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ReadAndClear(httptest.NewRecorder(), r); ok {
		t.Fatalf("expected no flash notice")
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), r); ok {
		t.Fatalf("expected malformed flash cookie to be ignored")
	}
}

func TestWriteRejectsBlankKey(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Write(w, r, Notice{Kind: KindInfo, Key: "   "})
	if got := len(w.Result().Cookies()); got != 0 {
		t.Fatalf("cookies = %d, want 0", got)
	}
}

func TestWriteRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Write(w, r, Notice{Kind: "celebration", Key: "flash.request.accepted"})
	if got := len(w.Result().Cookies()); got != 0 {
		t.Fatalf("cookies = %d, want 0", got)
	}
}

func TestNormalizeKindCase(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Write(w, r, Notice{Kind: " Error ", Key: "flash.request.failed"})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	notice, ok := ReadAndClear(httptest.NewRecorder(), next)
	if !ok {
		t.Fatalf("expected flash notice")
	}
	if notice.Kind != KindError {
		t.Fatalf("kind = %q, want %q", notice.Kind, KindError)
	}
}
