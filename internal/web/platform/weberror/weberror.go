// Package weberror renders user-safe error responses for web handlers.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
	"github.com/pvidigal/agromarket/internal/web/platform/i18n"
)

// PublicMessage resolves a user-safe localized error message.
//
// Raw error text never reaches the response; untranslated errors fall back
// to the HTTP status text for their mapped status.
func PublicMessage(loc i18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteError writes a localized plain-text error response with the mapped status.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	loc, _ := i18n.ResolveLocalizer(w, r)
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
