// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"
	Login  = "/login"
	Logout = "/logout"

	AppPrefix = "/app/"

	AppProduce   = "/app/produce"
	AppDelivery  = "/app/delivery"
	AppEquipment = "/app/equipment"
	AppLand      = "/app/land"

	AppFavorites             = "/app/favorites"
	FavoritesPrefix          = "/app/favorites/"
	AppFavoriteTogglePattern = FavoritesPrefix + "{listingID}/toggle"

	// ViewQueryKey selects which side of a request list is shown.
	ViewQueryKey = "view"
	// ViewMine lists requests the viewer initiated.
	ViewMine = "mine"
	// ViewReceived lists requests addressed to the viewer.
	ViewReceived = "received"
)

// VerticalPage returns the list page route for a vertical module slug.
func VerticalPage(slug string) string {
	return AppPrefix + escapeSegment(slug)
}

// VerticalView returns the list page route with an explicit view selection.
func VerticalView(slug string, view string) string {
	view = strings.TrimSpace(view)
	if view == "" {
		return VerticalPage(slug)
	}
	return VerticalPage(slug) + "?" + ViewQueryKey + "=" + url.QueryEscape(view)
}

// RequestActionPattern returns the ServeMux pattern for request actions
// under a vertical module slug.
func RequestActionPattern(slug string) string {
	return AppPrefix + escapeSegment(slug) + "/{entityID}/{action}"
}

// RequestAction returns the POST route for one request action.
func RequestAction(slug string, entityID int64, action string) string {
	return VerticalPage(slug) + "/" + strconv.FormatInt(entityID, 10) + "/" + escapeSegment(strings.ToLower(action))
}

// FavoriteToggle returns the POST route that toggles a favorite listing.
func FavoriteToggle(listingID string) string {
	return FavoritesPrefix + escapeSegment(listingID) + "/toggle"
}

func escapeSegment(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
