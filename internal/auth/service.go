package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when the email or password is wrong.
// The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminStore is the persistence surface the auth service needs.
// *Repository implements it; tests substitute an in-memory fake.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// Service contains the business logic for admin authentication.
type Service struct {
	store     AdminStore
	jwtSecret string
}

// NewService creates a new auth Service.
func NewService(store AdminStore, jwtSecret string) *Service {
	return &Service{store: store, jwtSecret: jwtSecret}
}

// SignIn verifies the password against the stored bcrypt hash and issues a
// signed JWT on success.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *Admin, error) {
	admin, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, admin, nil
}

// HashPassword produces a bcrypt hash suitable for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// issueToken creates a signed JWT for the given admin.
func (s *Service) issueToken(adminID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
