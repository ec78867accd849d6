// Package sqlite provides the SQLite-backed favorites store.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pvidigal/agromarket/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store provides SQLite-backed persistence for derived web state.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens and migrates a favorites store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrationFS, "migrations"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveFavorite records a favorite listing for the user.
func (s *Store) SaveFavorite(ctx context.Context, userID, listingID string) error {
	userID, listingID, err := normalizeFavorite(userID, listingID)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		"INSERT OR IGNORE INTO favorites (user_id, listing_id, created_at) VALUES (?, ?, ?)",
		userID, listingID, s.clock().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a favorite listing for the user.
func (s *Store) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	userID, listingID, err := normalizeFavorite(userID, listingID)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND listing_id = ?",
		userID, listingID,
	)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the user's favorite listing ids, newest first.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT listing_id FROM favorites WHERE user_id = ? ORDER BY created_at DESC, listing_id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var listings []string
	for rows.Next() {
		var listingID string
		if err := rows.Scan(&listingID); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		listings = append(listings, listingID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return listings, nil
}

// IsFavorite reports whether the listing is saved for the user.
func (s *Store) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	userID, listingID, err := normalizeFavorite(userID, listingID)
	if err != nil {
		return false, err
	}
	var found int
	err = s.sqlDB.QueryRowContext(ctx,
		"SELECT 1 FROM favorites WHERE user_id = ? AND listing_id = ?",
		userID, listingID,
	).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return true, nil
}

func normalizeFavorite(userID, listingID string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	listingID = strings.TrimSpace(listingID)
	if userID == "" {
		return "", "", fmt.Errorf("user id is required")
	}
	if listingID == "" {
		return "", "", fmt.Errorf("listing id is required")
	}
	return userID, listingID, nil
}
