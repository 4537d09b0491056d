package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wishlisthub/internal/models"
	"wishlisthub/internal/service"

	"github.com/gin-gonic/gin"
)

// Hand-rolled service mocks with overridable function fields. Calls without
// an override fail loudly so tests only stub what they use.

type mockAuth struct {
	registerFn func(ctx context.Context, username, email, password string) (*models.User, error)
	loginFn    func(ctx context.Context, identifier, password string) (*models.User, string, error)
	parseFn    func(accessToken string) (int, string, error)
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if m.registerFn == nil {
		return nil, errors.New("unexpected Register call")
	}
	return m.registerFn(ctx, username, email, password)
}

func (m *mockAuth) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	if m.loginFn == nil {
		return nil, "", errors.New("unexpected Login call")
	}
	return m.loginFn(ctx, identifier, password)
}

func (m *mockAuth) ParseToken(accessToken string) (int, string, error) {
	if m.parseFn == nil {
		return 0, "", errors.New("unexpected ParseToken call")
	}
	return m.parseFn(accessToken)
}

type mockUsers struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, id int) (*models.User, error)
	updateFn func(ctx context.Context, id int, p service.UserUpdateParams) (*models.User, error)
	deleteFn func(ctx context.Context, id int) error
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	if m.listFn == nil {
		return nil, errors.New("unexpected List call")
	}
	return m.listFn(ctx)
}

func (m *mockUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.getFn == nil {
		return nil, errors.New("unexpected GetByID call")
	}
	return m.getFn(ctx, id)
}

func (m *mockUsers) Update(ctx context.Context, id int, p service.UserUpdateParams) (*models.User, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return m.updateFn(ctx, id, p)
}

func (m *mockUsers) Delete(ctx context.Context, id int) error {
	if m.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

type mockWishlists struct {
	listPublicFn func(ctx context.Context) ([]models.Wishlist, error)
	listByUserFn func(ctx context.Context, userID int) ([]models.Wishlist, error)
	createFn     func(ctx context.Context, userID int, title string, isPrivate bool) (*models.Wishlist, error)
	updateFn     func(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error)
	deleteFn     func(ctx context.Context, id int) (*models.Wishlist, error)
}

func (m *mockWishlists) ListPublic(ctx context.Context) ([]models.Wishlist, error) {
	if m.listPublicFn == nil {
		return nil, errors.New("unexpected ListPublic call")
	}
	return m.listPublicFn(ctx)
}

func (m *mockWishlists) ListByUser(ctx context.Context, userID int) ([]models.Wishlist, error) {
	if m.listByUserFn == nil {
		return nil, errors.New("unexpected ListByUser call")
	}
	return m.listByUserFn(ctx, userID)
}

func (m *mockWishlists) Create(ctx context.Context, userID int, title string, isPrivate bool) (*models.Wishlist, error) {
	if m.createFn == nil {
		return nil, errors.New("unexpected Create call")
	}
	return m.createFn(ctx, userID, title, isPrivate)
}

func (m *mockWishlists) Update(ctx context.Context, id int, title string, isPrivate bool) (*models.Wishlist, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return m.updateFn(ctx, id, title, isPrivate)
}

func (m *mockWishlists) Delete(ctx context.Context, id int) (*models.Wishlist, error) {
	if m.deleteFn == nil {
		return nil, errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

type mockItems struct {
	listByWishlistFn func(ctx context.Context, wishlistID int) ([]models.WishlistItem, error)
	listByUserFn     func(ctx context.Context, userID int) ([]models.WishlistItem, error)
	createFn         func(ctx context.Context, wishlistID int, title string, price *float64, link *string) (*models.WishlistItem, error)
	updateFn         func(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error)
	deleteFn         func(ctx context.Context, id int) (*models.WishlistItem, error)
}

func (m *mockItems) ListByWishlist(ctx context.Context, wishlistID int) ([]models.WishlistItem, error) {
	if m.listByWishlistFn == nil {
		return nil, errors.New("unexpected ListByWishlist call")
	}
	return m.listByWishlistFn(ctx, wishlistID)
}

func (m *mockItems) ListByUser(ctx context.Context, userID int) ([]models.WishlistItem, error) {
	if m.listByUserFn == nil {
		return nil, errors.New("unexpected ListByUser call")
	}
	return m.listByUserFn(ctx, userID)
}

func (m *mockItems) Create(ctx context.Context, wishlistID int, title string, price *float64, link *string) (*models.WishlistItem, error) {
	if m.createFn == nil {
		return nil, errors.New("unexpected Create call")
	}
	return m.createFn(ctx, wishlistID, title, price, link)
}

func (m *mockItems) Update(ctx context.Context, id int, title string, price *float64, link *string) (*models.WishlistItem, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return m.updateFn(ctx, id, title, price, link)
}

func (m *mockItems) Delete(ctx context.Context, id int) (*models.WishlistItem, error) {
	if m.deleteFn == nil {
		return nil, errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

// okAuth accepts any bearer token as user 1 "alice".
func okAuth() *mockAuth {
	return &mockAuth{parseFn: func(string) (int, string, error) {
		return 1, "alice", nil
	}}
}

// newTestRouter builds the full route tree over the given mocks.
func newTestRouter(auth service.Authorization, users service.Users, wishlists service.Wishlists, items service.Items) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{
		Authorization: auth,
		Users:         users,
		Wishlists:     wishlists,
		Items:         items,
	}, nil)
	return h.InitRoutes()
}

func doRequest(t *testing.T, router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
