package service

import (
	"context"

	"wishlisthub/internal/models"
	"wishlisthub/internal/repository"
)

// ItemService answers item reads and CRUD under a wishlist.
type ItemService struct {
	items repository.Items
}

func NewItemService(items repository.Items) *ItemService {
	return &ItemService{items: items}
}

var _ Items = (*ItemService)(nil)

func (s *ItemService) ListByWishlist(ctx context.Context, wishlistID int) ([]models.WishlistItem, error) {
	return s.items.ListByWishlist(ctx, wishlistID)
}

func (s *ItemService) ListByUser(ctx context.Context, userID int) ([]models.WishlistItem, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *ItemService) Create(ctx context.Context, wishlistID int, title string, price *float64, link *string) (*models.WishlistItem, error) {
	it := &models.WishlistItem{
		WishlistID:  wishlistID,
		ItemTitle:   title,
		Price:       price,
		ProductLink: link,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update replaces title, price, and link. Returns (nil, nil) when the item
// does not exist.
func (s *ItemService) Update(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error) {
	return s.items.Update(ctx, id, title, price, link)
}

// Delete removes the item and returns the deleted row, or (nil, nil) when
// absent.
func (s *ItemService) Delete(ctx context.Context, id int) (*models.WishlistItem, error) {
	return s.items.Delete(ctx, id)
}
