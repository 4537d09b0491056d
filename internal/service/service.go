package service

import (
	"context"

	"wishlisthub/internal/models"
	"wishlisthub/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	ParseToken(accessToken string) (int, string, error)
}

// Users exposes account reads and the partial profile update/delete flows.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, p UserUpdateParams) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

// Wishlists exposes list browsing and owner-scoped CRUD.
type Wishlists interface {
	ListPublic(ctx context.Context) ([]models.Wishlist, error)
	ListByUser(ctx context.Context, userID int) ([]models.Wishlist, error)
	Create(ctx context.Context, userID int, title string, isPrivate bool) (*models.Wishlist, error)
	Update(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error)
	Delete(ctx context.Context, id int) (*models.Wishlist, error)
}

// Items exposes item reads per wishlist/user and item CRUD.
type Items interface {
	ListByWishlist(ctx context.Context, wishlistID int) ([]models.WishlistItem, error)
	ListByUser(ctx context.Context, userID int) ([]models.WishlistItem, error)
	Create(ctx context.Context, wishlistID int, title string, price *float64, link *string) (*models.WishlistItem, error)
	Update(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error)
	Delete(ctx context.Context, id int) (*models.WishlistItem, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Wishlists
	Items
}

// NewService wires the repository layer into concrete services. jwtSecret
// may be empty; the auth service then falls back to the development secret.
func NewService(repos *repository.Repository, jwtSecret string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, jwtSecret),
		Users:         NewUserService(repos.Users),
		Wishlists:     NewWishlistService(repos.Wishlists),
		Items:         NewItemService(repos.Items),
	}
}
