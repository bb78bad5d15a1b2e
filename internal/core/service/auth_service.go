package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sesamelabs/identity-service/internal/core/domain"
	"github.com/sesamelabs/identity-service/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenAuthority
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher *PasswordHasher,
	tokens *TokenAuthority,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		logger: logger,
	}
}

// Register creates a new identity with role "user". Field length policy is
// enforced at the HTTP boundary; here only presence is checked. A username
// collision surfaces as domain.ErrUserExists from the store.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuthEvent{
		Username: created.Username,
		ActorID:  created.ID,
		Action:   domain.AuditRegister,
		At:       now,
	})
	s.logger.Info().Str("username", created.Username).Msg("user registered")

	return created, nil
}

// Login verifies credentials and issues a session token. An unknown
// username and a wrong password both resolve to ErrInvalidCredentials so
// the response cannot be used to probe for accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordLoginFailure(username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordLoginFailure(username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.audit.Enqueue(domain.AuthEvent{
		Username: user.Username,
		ActorID:  user.ID,
		Action:   domain.AuditLoginSuccess,
		At:       time.Now().UTC(),
	})

	return token, user, nil
}

func (s *AuthService) recordLoginFailure(username string) {
	s.audit.Enqueue(domain.AuthEvent{
		Username: username,
		Action:   domain.AuditLoginFailure,
		At:       time.Now().UTC(),
	})
	s.logger.Debug().Str("username", username).Msg("login rejected")
}
