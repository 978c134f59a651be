// internal/domain/session/service.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// ErrEmailRequired is returned when login or registration is attempted
// without an email address.
var ErrEmailRequired = errors.New("email is required")

// Service handles the mock login/registration flow. Any credentials are
// accepted; a User is synthesized and mirrored to durable storage so a
// restart resumes the session directly.
type Service struct {
	store  storage.Store
	keys   storage.Keys
	tokens *auth.TokenManager
	log    *logrus.Logger
}

// NewService creates a new session service
func NewService(store storage.Store, keys storage.Keys, tokens *auth.TokenManager, log *logrus.Logger) *Service {
	return &Service{
		store:  store,
		keys:   keys,
		tokens: tokens,
		log:    log,
	}
}

// LoginRequest represents login form data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents registration form data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful login or registration
type AuthResponse struct {
	User      *User  `json:"user"`
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// Login signs a user in. The password is accepted as-is and never verified;
// the display name is derived from the email local-part.
func (s *Service) Login(ctx context.Context, email, _ string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	user := &User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  DisplayNameFromEmail(email),
	}

	return s.open(ctx, user)
}

// Register creates a new account with the given display name. No uniqueness
// check, no verification; a fresh identifier is generated.
func (s *Service) Register(ctx context.Context, name, email, _ string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DisplayNameFromEmail(email)
	}

	user := &User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}

	return s.open(ctx, user)
}

// Logout ends the session. Cart and wishlist are session-scoped in this
// design, so all three storage keys are cleared together.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	for _, key := range []string{
		s.keys.User(sessionID),
		s.keys.Cart(sessionID),
		s.keys.Wishlist(sessionID),
	} {
		if err := s.store.Clear(ctx, key); err != nil {
			return fmt.Errorf("failed to clear session state: %w", err)
		}
	}

	s.log.WithField("session_id", sessionID).Info("Session closed")
	return nil
}

// Current returns the session's user, or nil when the session is anonymous.
// A corrupt user blob is treated as anonymous rather than an error.
func (s *Service) Current(ctx context.Context, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, nil
	}

	data, err := s.store.Load(ctx, s.keys.User(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Warn("Corrupt user blob, treating session as anonymous")
		return nil, nil
	}

	return &user, nil
}

// open creates a session for user: persists the user blob and issues a token
// bound to a fresh session ID.
func (s *Service) open(ctx context.Context, user *User) (*AuthResponse, error) {
	sessionID := uuid.NewString()

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	if err := s.store.Save(ctx, s.keys.User(sessionID), data); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	token, err := s.tokens.GenerateToken(sessionID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"email":      user.Email,
	}).Info("Session opened")

	return &AuthResponse{
		User:      user,
		SessionID: sessionID,
		Token:     token,
	}, nil
}
