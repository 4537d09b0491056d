package models

import "time"

// Wishlist is a named, owned collection of items, flagged public or private.
// Username and ItemsCount are filled by listing queries that join the owner
// and aggregate item rows; they are not columns of the wishlists table.
type Wishlist struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	ListTitle  string    `json:"list_title"`
	IsPrivate  bool      `json:"is_private"`
	CreatedAt  time.Time `json:"created_at"`
	Username   string    `json:"username,omitempty"`
	ItemsCount int       `json:"items_count,omitempty"`
}
