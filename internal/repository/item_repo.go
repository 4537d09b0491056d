package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wishlisthub/internal/models"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

var _ Items = (*ItemRepository)(nil)

const (
	listItemsByWishlistSQL = `
		SELECT id, wishlist_id, item_title, price, product_link, created_at
		FROM wishlist_items WHERE wishlist_id = $1`

	listItemsByUserSQL = `
		SELECT i.id, i.wishlist_id, i.item_title, i.price, i.product_link, i.created_at
		FROM wishlist_items i
		INNER JOIN wishlists w ON i.wishlist_id = w.id
		WHERE w.user_id = $1`

	insertItemSQL = `
		INSERT INTO wishlist_items (wishlist_id, item_title, price, product_link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	updateItemSQL = `
		UPDATE wishlist_items SET item_title = $1, price = $2, product_link = $3 WHERE id = $4
		RETURNING id, wishlist_id, item_title, price, product_link, created_at`

	deleteItemSQL = `
		DELETE FROM wishlist_items WHERE id = $1
		RETURNING id, wishlist_id, item_title, price, product_link, created_at`
)

// ListByWishlist returns every item of one wishlist.
func (r *ItemRepository) ListByWishlist(ctx context.Context, wishlistID int) ([]models.WishlistItem, error) {
	if r.db == nil {
		return []models.WishlistItem{}, nil
	}
	return r.queryItems(ctx, listItemsByWishlistSQL, wishlistID)
}

// ListByUser returns the items of every wishlist the user owns.
func (r *ItemRepository) ListByUser(ctx context.Context, userID int) ([]models.WishlistItem, error) {
	if r.db == nil {
		return []models.WishlistItem{}, nil
	}
	return r.queryItems(ctx, listItemsByUserSQL, userID)
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, arg any) ([]models.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := make([]models.WishlistItem, 0, 16)
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return out, nil
}

// Create inserts an item and fills the generated columns on it.
func (r *ItemRepository) Create(ctx context.Context, it *models.WishlistItem) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	err := r.db.QueryRowContext(ctx, insertItemSQL,
		it.WishlistID, it.ItemTitle, nullFloat(it.Price), nullString(it.ProductLink),
	).Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item into wishlist %d: %w", it.WishlistID, err)
	}
	return nil
}

// Update replaces title, price, and link. Returns (nil, nil) when no row matched.
func (r *ItemRepository) Update(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	row := r.db.QueryRowContext(ctx, updateItemSQL, title, nullFloat(price), nullString(link), id)
	it, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return it, nil
}

// Delete removes an item and returns the deleted row, or (nil, nil) when no
// row matched.
func (r *ItemRepository) Delete(ctx context.Context, id int) (*models.WishlistItem, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	row := r.db.QueryRowContext(ctx, deleteItemSQL, id)
	it, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete item %d: %w", id, err)
	}
	return it, nil
}

// scanItem reads one item row through the given scan function, converting
// the nullable price and link columns.
func scanItem(scan func(dest ...any) error) (*models.WishlistItem, error) {
	var (
		it    models.WishlistItem
		price sql.NullFloat64
		link  sql.NullString
	)
	if err := scan(&it.ID, &it.WishlistID, &it.ItemTitle, &price, &link, &it.CreatedAt); err != nil {
		return nil, err
	}
	if price.Valid {
		it.Price = &price.Float64
	}
	if link.Valid {
		it.ProductLink = &link.String
	}
	return &it, nil
}

// nullFloat converts an optional float to its driver value.
func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// nullString converts an optional string to its driver value.
func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
