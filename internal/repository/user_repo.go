package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"wishlisthub/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `
		INSERT INTO users (username, firstname, lastname, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_admin, created_at`

	selectUserByIDSQL = `
		SELECT id, username, firstname, lastname, email, password_hash, is_admin, created_at
		FROM users WHERE id = $1`

	selectUserByIdentifierSQL = `
		SELECT id, username, firstname, lastname, email, password_hash, is_admin, created_at
		FROM users WHERE username = $1 OR email = $1`

	listUsersSQL = `
		SELECT id, username, firstname, lastname, email, is_admin, created_at
		FROM users`

	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

// Columns returned by partial updates; the hash stays out of the row the
// handler serializes.
const userReturningCols = `id, username, firstname, lastname, email, is_admin, created_at`

// Create inserts a new user and fills the generated columns on u.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	err := r.db.QueryRowContext(ctx, insertUserSQL,
		u.Username, u.Firstname, u.Lastname, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByID fetches a full user row. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if r.db == nil {
		return nil, nil
	}
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return u, nil
}

// GetByIdentifier fetches a user whose username or email equals identifier.
// Returns (nil, nil) if not found.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if r.db == nil {
		return nil, nil
	}
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIdentifierSQL, identifier))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", identifier, err)
	}
	return u, nil
}

// List returns every user with public fields only.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	if r.db == nil {
		return []models.User{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Firstname, &u.Lastname, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// Update applies the non-nil fields of upd and returns the updated row
// without the hash. Returns (nil, nil) when no row matched. An empty update
// degenerates to a plain fetch.
func (r *UserRepository) Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	var (
		set  []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Firstname != nil {
		add("firstname", *upd.Firstname)
	}
	if upd.Lastname != nil {
		add("lastname", *upd.Lastname)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}
	if upd.IsAdmin != nil {
		add("is_admin", *upd.IsAdmin)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), userReturningCols)

	var u models.User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Firstname, &u.Lastname, &u.Email, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &u, nil
}

// Delete removes a user; owned wishlists and their items go with it via
// the store's cascade. Deleting an absent id is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// scanUser reads a full user row. Returns (nil, nil) on sql.ErrNoRows.
func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Firstname, &u.Lastname, &u.Email,
		&u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
