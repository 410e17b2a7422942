package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/dto"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/utils"
)

// AuthResult carries the authenticated user together with the session
// token issued for them.
type AuthResult struct {
	User  *domain.User
	Token string
}

// authService implements AuthService interface
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	exchanger   SessionExchanger
	bcryptCost  int
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	exchanger SessionExchanger,
	bcryptCost int,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		exchanger:   exchanger,
		bcryptCost:  bcryptCost,
		sessionTTL:  sessionTTL,
	}
}

// Signup registers a new account and issues a session
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*AuthResult, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, fmt.Errorf("invalid email format")
	}

	if !utils.ValidatePassword(req.Password) {
		return nil, fmt.Errorf("password must be at least 8 characters long and contain uppercase, lowercase, and number")
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        utils.SanitizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: passwordHash,
	}

	// The unique key on email decides the race; no pre-check lookup.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueSession(ctx, user.ID, "")
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates an account by email and password and issues a session
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Accounts created through the external exchange carry no digest and
	// cannot log in with a password.
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID, "")
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, Token: token}, nil
}

// ExchangeSession trades a provider session id for an account and a session
// keyed on the provider-issued token.
func (s *authService) ExchangeSession(ctx context.Context, sessionID string) (*AuthResult, error) {
	identity, err := s.exchanger.Exchange(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email: utils.SanitizeEmail(identity.Email),
		Name:  identity.Name,
	}
	if identity.Picture != "" {
		user.Picture = &identity.Picture
	}

	stored, err := s.userRepo.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.issueSession(ctx, stored.ID, identity.SessionToken)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: stored, Token: token}, nil
}

// ResolveSession turns an opaque bearer token into the authenticated
// account. Failures are never retried; every step surfaces immediately.
func (s *authService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Logout deletes the session for the given token. A missing session is not
// an error; logout is idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// SessionMaxAge returns the session lifetime in whole seconds
func (s *authService) SessionMaxAge() int {
	return int(s.sessionTTL.Seconds())
}

// issueSession writes a session row expiring sessionTTL from now. When
// token is empty a fresh opaque token is generated; the external exchange
// passes the provider-issued token instead.
func (s *authService) issueSession(ctx context.Context, userID, token string) (string, error) {
	if token == "" {
		token = utils.NewSessionToken()
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}
