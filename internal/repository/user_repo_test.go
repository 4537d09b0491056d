package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"wishlisthub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return db, mock, cleanup
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func userColumns() []string {
	return []string{"id", "username", "firstname", "lastname", "email", "password_hash", "is_admin", "created_at"}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
			WithArgs("alice", nil, nil, "alice@example.com", "hash123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "is_admin", "created_at"}).AddRow(7, false, created))

		u := &models.User{Username: "alice", Email: strPtr("alice@example.com"), PasswordHash: "hash123"}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 7 || u.IsAdmin || !u.CreatedAt.Equal(created) {
			t.Fatalf("generated columns not filled: %+v", u)
		}
	})

	t.Run("duplicate surfaces as plain error", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
			WithArgs("alice", nil, nil, "alice@example.com", "hash123").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		u := &models.User{Username: "alice", Email: strPtr("alice@example.com"), PasswordHash: "hash123"}
		err := repo.Create(ctx, u)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "insert user") {
			t.Fatalf("expected wrapped insert error, got %q", err)
		}
	})

	t.Run("nil db fails writes", func(t *testing.T) {
		repo := NewUserRepository(nil)
		err := repo.Create(ctx, &models.User{Username: "alice"})
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestUserRepository_GetByIdentifier(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		mockExpect func(sqlmock.Sqlmock)
		wantNil    bool
		wantErr    bool
	}{
		{
			name:       "found by username",
			identifier: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIdentifierSQL)).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows(userColumns()).
						AddRow(1, "alice", nil, nil, "alice@example.com", "h", false, time.Now()))
			},
		},
		{
			name:       "not found returns nil, nil",
			identifier: "ghost",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIdentifierSQL)).
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name:       "query error",
			identifier: "alice",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByIdentifierSQL)).
					WithArgs("alice").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewUserRepository(db)

			tt.mockExpect(mock)

			u, err := repo.GetByIdentifier(ctx, tt.identifier)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil != (u == nil) {
				t.Fatalf("wantNil=%v, got %+v", tt.wantNil, u)
			}
			if u != nil && u.Username != tt.identifier {
				t.Fatalf("unexpected user: %+v", u)
			}
		})
	}

	t.Run("nil db reads degrade to nil", func(t *testing.T) {
		repo := NewUserRepository(nil)
		u, err := repo.GetByIdentifier(ctx, "alice")
		if err != nil || u != nil {
			t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
		}
	})
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("builds SET clause from provided fields only", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		want := "UPDATE users SET username = $1, password_hash = $2 WHERE id = $3 RETURNING " + userReturningCols
		mock.ExpectQuery(regexp.QuoteMeta(want)).
			WithArgs("bob", "newhash", 3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "firstname", "lastname", "email", "is_admin", "created_at"}).
				AddRow(3, "bob", nil, nil, nil, false, time.Now()))

		u, err := repo.Update(ctx, 3, models.UserUpdate{
			Username:     strPtr("bob"),
			PasswordHash: strPtr("newhash"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.Username != "bob" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("zero rows affected returns nil, nil", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		mock.ExpectQuery("UPDATE users SET").
			WithArgs(true, 99).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.Update(ctx, 99, models.UserUpdate{IsAdmin: boolPtr(true)})
		if err != nil || u != nil {
			t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
		}
	})

	t.Run("empty update degenerates to fetch", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(5, "carol", nil, nil, nil, "h", false, time.Now()))

		u, err := repo.Update(ctx, 5, models.UserUpdate{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.ID != 5 {
			t.Fatalf("unexpected user: %+v", u)
		}
	})
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id is not an error", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
			WithArgs(42).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Delete(ctx, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil db fails writes", func(t *testing.T) {
		repo := NewUserRepository(nil)
		if err := repo.Delete(ctx, 1); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("nil db reads degrade to empty", func(t *testing.T) {
		repo := NewUserRepository(nil)
		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users == nil || len(users) != 0 {
			t.Fatalf("expected empty slice, got %v", users)
		}
	})

	t.Run("scans public fields", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(listUsersSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "firstname", "lastname", "email", "is_admin", "created_at"}).
				AddRow(1, "alice", "Alice", nil, "alice@example.com", false, time.Now()).
				AddRow(2, "bob", nil, nil, nil, true, time.Now()))

		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
		if users[0].Firstname == nil || *users[0].Firstname != "Alice" {
			t.Fatalf("expected firstname Alice, got %+v", users[0])
		}
		if users[1].Email != nil {
			t.Fatalf("expected nil email for bob, got %q", *users[1].Email)
		}
	})
}
