// Package storage defines the derived-state store contracts for the web
// service. Everything kept here is rebuildable from the backend; the store
// is never consulted for lifecycle state.
package storage

import "context"

// Favorite is one saved listing reference.
type Favorite struct {
	UserID    string
	ListingID string
}

// FavoriteStore persists per-user favorite listings.
type FavoriteStore interface {
	// SaveFavorite records a favorite. Saving an existing favorite is a no-op.
	SaveFavorite(ctx context.Context, userID, listingID string) error
	// RemoveFavorite deletes a favorite. Removing a missing favorite is a no-op.
	RemoveFavorite(ctx context.Context, userID, listingID string) error
	// ListFavorites returns the user's favorite listing ids, newest first.
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	// IsFavorite reports whether the listing is saved for the user.
	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
}
