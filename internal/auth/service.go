// Package auth implements credential-based authentication: account
// registration, login, and stateless bearer-token issuance and verification.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidInput is returned when registration fields fail validation
	ErrInvalidInput = errors.New("invalid email or password")
	// ErrInvalidCredentials is returned on any login failure. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the email is unknown so that login
// latency does not reveal whether an account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Service implements registration, login and token verification
type Service struct {
	store             UserStore
	tokens            *TokenManager
	minPasswordLength int
}

// NewService creates a new authentication service
func NewService(store UserStore, tokens *TokenManager, minPasswordLength int) *Service {
	return &Service{
		store:             store,
		tokens:            tokens,
		minPasswordLength: minPasswordLength,
	}
}

// Register creates a new account and returns a fresh token with the public
// user view. Emails are matched case-insensitively; only a bcrypt hash of the
// password is ever stored.
func (s *Service) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if err := s.validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.Create(ctx, &User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates credentials and issues a new token. All failures
// collapse to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn comparable time before failing
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}

// Verify resolves a bearer token to the user identifier it is bound to.
// Tokens are stateless; this never touches the store.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return id, nil
}

// GetUserByID returns a fresh snapshot of the user record
func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) validateCredentials(email, password string) error {
	if email == "" || len(password) < s.minPasswordLength {
		return ErrInvalidInput
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidInput
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
