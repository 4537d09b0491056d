package repository

import (
	"context"
	"database/sql"
	"errors"

	"wishlisthub/internal/models"
)

// ErrStoreUnavailable is returned by write methods when the service runs
// without a configured store. Reads degrade to empty results instead of
// erroring, mirroring how the API behaves with persistence disabled.
var ErrStoreUnavailable = errors.New("store unavailable")

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

type Wishlists interface {
	ListPublic(ctx context.Context) ([]models.Wishlist, error)
	ListByUser(ctx context.Context, userID int, private bool) ([]models.Wishlist, error)
	Create(ctx context.Context, w *models.Wishlist) error
	Update(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error)
	Delete(ctx context.Context, id int) (*models.Wishlist, error)
}

type Items interface {
	ListByWishlist(ctx context.Context, wishlistID int) ([]models.WishlistItem, error)
	ListByUser(ctx context.Context, userID int) ([]models.WishlistItem, error)
	Create(ctx context.Context, it *models.WishlistItem) error
	Update(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error)
	Delete(ctx context.Context, id int) (*models.WishlistItem, error)
}

type Repository struct {
	Users     Users
	Wishlists Wishlists
	Items     Items
}

// NewRepository wires the SQL repositories. db may be nil when no store is
// configured; repositories then serve empty reads and fail writes with
// ErrStoreUnavailable.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Wishlists: NewWishlistRepository(db),
		Items:     NewItemRepository(db),
	}
}
