package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wishlisthub/internal/models"
)

type WishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

var _ Wishlists = (*WishlistRepository)(nil)

const (
	listPublicWishlistsSQL = `
		SELECT w.id, w.user_id, w.list_title, w.is_private, w.created_at, u.username,
		       COUNT(i.id) AS items_count
		FROM wishlists w
		LEFT JOIN users u ON w.user_id = u.id
		LEFT JOIN wishlist_items i ON w.id = i.wishlist_id
		WHERE w.is_private = FALSE
		GROUP BY w.id, u.username`

	listUserWishlistsSQL = `
		SELECT w.id, w.user_id, w.list_title, w.is_private, w.created_at,
		       COUNT(i.id) AS items_count
		FROM wishlists w
		LEFT JOIN wishlist_items i ON w.id = i.wishlist_id
		WHERE w.is_private = $1 AND w.user_id = $2
		GROUP BY w.id`

	insertWishlistSQL = `
		INSERT INTO wishlists (user_id, list_title, is_private)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	updateWishlistSQL = `
		UPDATE wishlists SET list_title = $1, is_private = $2 WHERE id = $3
		RETURNING id, user_id, list_title, is_private, created_at`

	deleteWishlistSQL = `
		DELETE FROM wishlists WHERE id = $1
		RETURNING id, user_id, list_title, is_private, created_at`
)

// ListPublic returns all public wishlists with owner username and item count.
func (r *WishlistRepository) ListPublic(ctx context.Context) ([]models.Wishlist, error) {
	if r.db == nil {
		return []models.Wishlist{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listPublicWishlistsSQL)
	if err != nil {
		return nil, fmt.Errorf("list public wishlists: %w", err)
	}
	defer rows.Close()

	out := make([]models.Wishlist, 0, 16)
	for rows.Next() {
		var (
			w        models.Wishlist
			username sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.ListTitle, &w.IsPrivate, &w.CreatedAt, &username, &w.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan public wishlist row: %w", err)
		}
		w.Username = username.String
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list public wishlists: %w", err)
	}
	return out, nil
}

// ListByUser returns one visibility slice of a user's wishlists with item
// counts; callers combine the private and public slices themselves.
func (r *WishlistRepository) ListByUser(ctx context.Context, userID int, private bool) ([]models.Wishlist, error) {
	if r.db == nil {
		return []models.Wishlist{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listUserWishlistsSQL, private, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlists for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Wishlist, 0, 8)
	for rows.Next() {
		var w models.Wishlist
		if err := rows.Scan(&w.ID, &w.UserID, &w.ListTitle, &w.IsPrivate, &w.CreatedAt, &w.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list wishlists for user %d: %w", userID, err)
	}
	return out, nil
}

// Create inserts a wishlist and fills the generated columns on w.
func (r *WishlistRepository) Create(ctx context.Context, w *models.Wishlist) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	err := r.db.QueryRowContext(ctx, insertWishlistSQL, w.UserID, w.ListTitle, w.IsPrivate).
		Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert wishlist for user %d: %w", w.UserID, err)
	}
	return nil
}

// Update replaces title and visibility. Returns (nil, nil) when no row matched.
func (r *WishlistRepository) Update(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var w models.Wishlist
	err := r.db.QueryRowContext(ctx, updateWishlistSQL, title, isPrivate, id).
		Scan(&w.ID, &w.UserID, &w.ListTitle, &w.IsPrivate, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update wishlist %d: %w", id, err)
	}
	return &w, nil
}

// Delete removes a wishlist and returns the deleted row, or (nil, nil) when
// no row matched. Items under the list go with it via the store's cascade.
func (r *WishlistRepository) Delete(ctx context.Context, id int) (*models.Wishlist, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	var w models.Wishlist
	err := r.db.QueryRowContext(ctx, deleteWishlistSQL, id).
		Scan(&w.ID, &w.UserID, &w.ListTitle, &w.IsPrivate, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete wishlist %d: %w", id, err)
	}
	return &w, nil
}
