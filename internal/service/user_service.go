package service

import (
	"context"

	"wishlisthub/internal/models"
	"wishlisthub/internal/repository"
)

// UserUpdateParams carries a partial profile update. Nil fields are left
// unchanged; a non-nil Password is re-hashed before it reaches the store.
type UserUpdateParams struct {
	Username  *string
	Firstname *string
	Lastname  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// UserService answers account reads and applies profile updates.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update merges the provided fields into the account. Returns (nil, nil)
// when the account does not exist.
func (s *UserService) Update(ctx context.Context, id int, p UserUpdateParams) (*models.User, error) {
	upd := models.UserUpdate{
		Username:  p.Username,
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Email:     p.Email,
		IsAdmin:   p.IsAdmin,
	}
	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}
	return s.users.Update(ctx, id, upd)
}

// Delete removes the account; the store cascades to wishlists and items.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
