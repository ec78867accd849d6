package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "favorites.db"))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatalf("Open() should reject blank path")
	}
}

func TestSaveAndListFavorites(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }
	if err := store.SaveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("SaveFavorite() = %v", err)
	}
	store.clock = func() time.Time { return now.Add(time.Minute) }
	if err := store.SaveFavorite(ctx, "user-1", "listing-b"); err != nil {
		t.Fatalf("SaveFavorite() = %v", err)
	}

	listings, err := store.ListFavorites(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListFavorites() = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("favorites = %d, want 2", len(listings))
	}
	if listings[0] != "listing-b" {
		t.Fatalf("favorites[0] = %q, want newest first", listings[0])
	}
}

func TestSaveFavoriteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("SaveFavorite() = %v", err)
	}
	if err := store.SaveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("second SaveFavorite() = %v", err)
	}

	listings, err := store.ListFavorites(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListFavorites() = %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("favorites = %d, want 1", len(listings))
	}
}

func TestRemoveFavorite(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("SaveFavorite() = %v", err)
	}
	if err := store.RemoveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("RemoveFavorite() = %v", err)
	}
	if err := store.RemoveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("removing a missing favorite should be a no-op, got %v", err)
	}

	ok, err := store.IsFavorite(ctx, "user-1", "listing-a")
	if err != nil {
		t.Fatalf("IsFavorite() = %v", err)
	}
	if ok {
		t.Fatalf("IsFavorite() = true after removal")
	}
}

func TestFavoritesScopedPerUser(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveFavorite(ctx, "user-1", "listing-a"); err != nil {
		t.Fatalf("SaveFavorite() = %v", err)
	}

	listings, err := store.ListFavorites(ctx, "user-2")
	if err != nil {
		t.Fatalf("ListFavorites() = %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("user-2 favorites = %d, want 0", len(listings))
	}
}

func TestFavoriteValidation(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveFavorite(ctx, " ", "listing-a"); err == nil {
		t.Fatalf("SaveFavorite should reject blank user id")
	}
	if err := store.SaveFavorite(ctx, "user-1", " "); err == nil {
		t.Fatalf("SaveFavorite should reject blank listing id")
	}
	if _, err := store.ListFavorites(ctx, ""); err == nil {
		t.Fatalf("ListFavorites should reject blank user id")
	}
}
