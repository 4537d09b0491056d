package models

import "time"

// WishlistItem is a titled entry within a wishlist. Price and ProductLink
// are nullable in the store and stay pointers here.
type WishlistItem struct {
	ID          int       `json:"id"`
	WishlistID  int       `json:"wishlist_id"`
	ItemTitle   string    `json:"item_title"`
	Price       *float64  `json:"price"`
	ProductLink *string   `json:"product_link"`
	CreatedAt   time.Time `json:"created_at"`
}
