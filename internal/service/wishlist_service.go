package service

import (
	"context"

	"wishlisthub/internal/models"
	"wishlisthub/internal/repository"
)

// WishlistService answers list browsing and owner-scoped wishlist CRUD.
type WishlistService struct {
	wishlists repository.Wishlists
}

func NewWishlistService(wishlists repository.Wishlists) *WishlistService {
	return &WishlistService{wishlists: wishlists}
}

var _ Wishlists = (*WishlistService)(nil)

func (s *WishlistService) ListPublic(ctx context.Context) ([]models.Wishlist, error) {
	return s.wishlists.ListPublic(ctx)
}

// ListByUser returns the union of a user's private and public lists, private
// first. The two queries run independently without a transaction, so the
// combined result is not an atomic snapshot.
func (s *WishlistService) ListByUser(ctx context.Context, userID int) ([]models.Wishlist, error) {
	private, err := s.wishlists.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	public, err := s.wishlists.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return append(private, public...), nil
}

func (s *WishlistService) Create(ctx context.Context, userID int, title string, isPrivate bool) (*models.Wishlist, error) {
	w := &models.Wishlist{
		UserID:    userID,
		ListTitle: title,
		IsPrivate: isPrivate,
	}
	if err := s.wishlists.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Update replaces title and visibility. Returns (nil, nil) when the list
// does not exist.
func (s *WishlistService) Update(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error) {
	return s.wishlists.Update(ctx, id, title, isPrivate)
}

// Delete removes the list and returns the deleted row, or (nil, nil) when
// absent.
func (s *WishlistService) Delete(ctx context.Context, id int) (*models.Wishlist, error) {
	return s.wishlists.Delete(ctx, id)
}
