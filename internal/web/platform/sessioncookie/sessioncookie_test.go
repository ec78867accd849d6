package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReadMissingCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(r); ok {
		t.Fatalf("Read ok = true, want false")
	}
}

func TestReadBlankCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: Name, Value: "   "})
	if _, ok := Read(r); ok {
		t.Fatalf("Read ok = true, want false")
	}
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Write(w, r, " token-1 ")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Name)
	}
	if cookie.Value != "token-1" {
		t.Fatalf("cookie value = %q, want %q", cookie.Value, "token-1")
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie HttpOnly = false, want true")
	}
	if cookie.Secure {
		t.Fatalf("cookie Secure = true for plain http request, want false")
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookie)
	token, ok := Read(next)
	if !ok {
		t.Fatalf("Read ok = false, want true")
	}
	if token != "token-1" {
		t.Fatalf("token = %q, want %q", token, "token-1")
	}
}

func TestWriteSecureOverTLS(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	Write(w, r, "token-2")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if !cookies[0].Secure {
		t.Fatalf("cookie Secure = false for https request, want true")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Clear(w, r)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("cookie value = %q, want empty", cookies[0].Value)
	}
}
