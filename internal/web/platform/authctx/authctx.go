// Package authctx provides web authentication seams.
//
// Identity always comes from a validated session cookie. Header-only
// identities are rejected so a proxy header can never impersonate a viewer.
package authctx

import (
	"context"
	"net/http"

	"github.com/pvidigal/agromarket/internal/web/platform/sessioncookie"
)

// Viewer is the authenticated identity resolved for a request.
type Viewer struct {
	UserID string
	Token  string
}

// ResolveViewer resolves the authenticated viewer for a request.
type ResolveViewer func(*http.Request) (Viewer, bool)

// IsAuthenticated reports whether the current request should access protected routes.
type IsAuthenticated func(*http.Request) bool

// SessionViewer resolves viewers through validated session cookies only.
//
// verify maps a session token to a user ID; any verification error means
// the request stays anonymous.
func SessionViewer(verify func(context.Context, string) (string, error)) ResolveViewer {
	return func(r *http.Request) (Viewer, bool) {
		if r == nil || verify == nil {
			return Viewer{}, false
		}
		token, ok := sessioncookie.Read(r)
		if !ok {
			return Viewer{}, false
		}
		userID, err := verify(r.Context(), token)
		if err != nil || userID == "" {
			return Viewer{}, false
		}
		return Viewer{UserID: userID, Token: token}, true
	}
}

// ValidatedSessionAuth authenticates requests only through validated session cookies.
func ValidatedSessionAuth(resolve ResolveViewer) IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil || resolve == nil {
			return false
		}
		_, ok := resolve(r)
		return ok
	}
}

type viewerContextKey struct{}

// WithViewer stores the resolved viewer on the context.
func WithViewer(ctx context.Context, viewer Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey{}, viewer)
}

// ViewerFrom returns the viewer previously stored with WithViewer.
func ViewerFrom(ctx context.Context) (Viewer, bool) {
	viewer, ok := ctx.Value(viewerContextKey{}).(Viewer)
	if !ok || viewer.UserID == "" {
		return Viewer{}, false
	}
	return viewer, true
}
