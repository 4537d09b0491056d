package service

import (
	"context"
	"errors"
	"testing"

	"wishlisthub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// fakeUsersRepo is an in-memory repository.Users for service tests.
type fakeUsersRepo struct {
	users   map[string]*models.User
	nextID  int
	lastErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) error {
	if f.lastErr != nil {
		return f.lastErr
	}
	if _, exists := f.users[u.Username]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.Username] = u
	return nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsersRepo) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	if u, ok := f.users[identifier]; ok {
		return u, nil
	}
	for _, u := range f.users {
		if u.Email != nil && *u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsersRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.PasswordHash != nil {
			u.PasswordHash = *upd.PasswordHash
		}
		return u, nil
	}
	return nil, nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, id int) error {
	for name, u := range f.users {
		if u.ID == id {
			delete(f.users, name)
		}
	}
	return nil
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsersRepo()
	svc := NewAuthService(repo, "test-secret")

	u, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if u.PasswordHash == "s3cret" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	t.Run("empty password rejected", func(t *testing.T) {
		if _, err := svc.Register(ctx, "bob", "bob@example.com", "   "); err == nil {
			t.Fatal("expected error for blank password")
		}
	})

	t.Run("store errors surface unchanged", func(t *testing.T) {
		if _, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret"); err == nil {
			t.Fatal("expected duplicate error from the store")
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsersRepo()
	svc := NewAuthService(repo, "test-secret")

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("by username", func(t *testing.T) {
		u, token, err := svc.Login(ctx, "alice", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Username != "alice" || token == "" {
			t.Fatalf("unexpected result: user=%+v token=%q", u, token)
		}
	})

	t.Run("by email", func(t *testing.T) {
		u, _, err := svc.Login(ctx, "alice@example.com", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Username != "alice" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody", "s3cret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("store errors are not masked as credentials", func(t *testing.T) {
		repo.lastErr = errors.New("connection refused")
		defer func() { repo.lastErr = nil }()
		_, _, err := svc.Login(ctx, "alice", "s3cret")
		if errors.Is(err, ErrInvalidCredentials) || err == nil {
			t.Fatalf("expected the store error, got %v", err)
		}
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsersRepo()
	svc := NewAuthService(repo, "test-secret")

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	t.Run("roundtrip", func(t *testing.T) {
		id, username, err := svc.ParseToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 1 || username != "alice" {
			t.Fatalf("unexpected claims: id=%d username=%q", id, username)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, _, err := svc.ParseToken("not.a.token"); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewAuthService(repo, "another-secret")
		if _, _, err := other.ParseToken(token); err == nil {
			t.Fatal("expected signature verification to fail")
		}
	})

	t.Run("wrong signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Username: "alice"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("build token: %v", err)
		}
		if _, _, err := svc.ParseToken(unsigned); err == nil {
			t.Fatal("expected rejection of non-HMAC token")
		}
	})
}
