// ABOUTME: Authentication service composing the token codec and credential store
// ABOUTME: Handles registration, login, and resolving bearer tokens to principals

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/devfolio/portfolio-api/internal/store"
)

// Service errors
var (
	// ErrInvalidCredentials is the single login failure value. It is returned
	// for both unknown usernames and wrong passwords so callers cannot tell
	// which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is the single token authentication failure value. It
	// covers malformed, tampered, and expired tokens as well as tokens whose
	// subject no longer exists; the distinction is logged, never surfaced.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrInvalidUsername is returned by Register for usernames that don't
	// match the allowed format.
	ErrInvalidUsername = errors.New("invalid username")
)

// DefaultRole is assigned to principals registered without an explicit role.
const DefaultRole = "admin"

// Username validation regex: starts with a letter, alphanumeric + underscores, 3-32 characters
var usernameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,31}$`)

// Service implements registration, login, and bearer token authentication.
type Service struct {
	principals store.PrincipalStore
	codec      *TokenCodec
	tokenTTL   time.Duration
	logger     *slog.Logger
}

// NewService creates an authentication service. A zero tokenTTL selects
// DefaultTokenTTL.
func NewService(principals store.PrincipalStore, codec *TokenCodec, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		principals: principals,
		codec:      codec,
		tokenTTL:   tokenTTL,
		logger:     slog.Default().With("component", "auth"),
	}
}

// Register creates a new principal with a hashed password. Role defaults to
// DefaultRole when empty. Returns store.ErrUsernameExists if the username is
// taken; unlike login, registration intentionally reveals username existence.
func (s *Service) Register(ctx context.Context, username, password, role string) (*store.Principal, error) {
	if !usernameRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = DefaultRole
	}

	p := &store.Principal{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.principals.CreatePrincipal(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Login verifies a username/password pair and issues a bearer token with the
// username as subject. All failures return ErrInvalidCredentials; a storage
// failure is returned as-is so it isn't mistaken for bad credentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	p, err := s.principals.GetPrincipalByUsername(ctx, username)
	if errors.Is(err, store.ErrPrincipalNotFound) {
		// Burn the same bcrypt cost as a real comparison so response timing
		// doesn't reveal whether the username exists.
		DummyCheck(password)
		s.logger.Debug("login failed", "username", username, "reason", "unknown user")
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("looking up principal: %w", err)
	}

	if !CheckPassword(password, p.PasswordHash) {
		s.logger.Debug("login failed", "username", username, "reason", "wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(p.Username, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("login successful", "username", username)
	return token, nil
}

// Authenticate resolves a bearer token to a principal. The principal is
// re-fetched from the store on every call rather than trusted from token
// claims, so role changes or deletions take effect on the next request
// without token revocation. All authentication failures return
// ErrUnauthorized; storage failures are returned as-is.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*store.Principal, error) {
	subject, err := s.codec.Verify(tokenString)
	if err != nil {
		s.logger.Debug("token rejected", "error", err)
		return nil, ErrUnauthorized
	}

	p, err := s.principals.GetPrincipalByUsername(ctx, subject)
	if errors.Is(err, store.ErrPrincipalNotFound) {
		s.logger.Debug("token subject not found", "subject", subject)
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("looking up principal: %w", err)
	}

	return p, nil
}
