package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wishlisthub/internal/models"
	"wishlisthub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = 7 * 24 * time.Hour

	// Used only when no JWT_SECRET is configured. Fine for local
	// development, a deployment risk everywhere else.
	devSigningKey = "dev_jwt_secret"
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the JWT payload: user id and username plus registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// AuthService handles registration, credential checks, and token handling.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	if signingKey == "" {
		signingKey = devSigningKey
	}
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

var _ Authorization = (*AuthService)(nil)

// Register hashes the password and creates the account. Uniqueness of
// username/email is left to the store; violations surface as plain errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	u := &models.User{
		Username:     username,
		Email:        &email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the identifier (username or email) and password and returns
// the user together with a signed token. Lookup miss and password mismatch
// both map to ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	u, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ParseToken validates a token and returns the embedded user id and username.
func (s *AuthService) ParseToken(accessToken string) (int, string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}
	return claims.UserID, claims.Username, nil
}

// HashPassword re-hashes a password for profile updates.
func HashPassword(password string) (string, error) {
	return hashPassword(password)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
