package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sesamelabs/identity-service/internal/core/domain"
	"github.com/sesamelabs/identity-service/internal/core/ports"
)

// ProfileCache caches public identity views keyed by id. Misses and cache
// failures fall through to the store.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// UserService implements profile reads, self-or-admin updates, and the
// admin listing.
type UserService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	policy *AccessPolicy
	cache  ProfileCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	hasher *PasswordHasher,
	policy *AccessPolicy,
	cache ProfileCache,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		policy: policy,
		cache:  cache,
		audit:  audit,
		logger: logger,
	}
}

// Profile loads the public view of an identity by id, read-through cached.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := user.PublicView()
	if s.cache != nil {
		if err := s.cache.Set(ctx, view); err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache write failed")
		}
	}
	return view, nil
}

// Update applies a self-or-admin mutation to the target identity.
//
// A role value coming from a non-admin caller, or one outside the known
// enum, is dropped without error while the remaining fields still apply.
// An update that ends up with no applicable fields is ErrInvalidInput.
func (s *UserService) Update(ctx context.Context, caller *domain.SessionClaims, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
	if !s.policy.CanModify(caller, targetID) {
		return nil, domain.ErrForbidden
	}

	var update ports.UserUpdate
	if input.Username != "" {
		username := input.Username
		update.Username = &username
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}
	if role := s.policy.FilterRole(caller, input.Role); role != "" {
		update.Role = &role
	}

	if update.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, targetID, update)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, targetID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", targetID).Msg("profile cache invalidation failed")
		}
	}

	s.audit.Enqueue(domain.AuthEvent{
		Username: updated.Username,
		ActorID:  caller.Subject,
		Action:   domain.AuditUserUpdated,
		At:       time.Now().UTC(),
	})
	s.logger.Info().
		Str("user_id", targetID).
		Str("actor_id", caller.Subject).
		Msg("user updated")

	return updated.PublicView(), nil
}

// List returns all identities ordered by creation time ascending.
// Admin-only; the role gate runs in the HTTP layer before this is reached.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*domain.User, len(users))
	for i, u := range users {
		views[i] = u.PublicView()
	}
	return views, nil
}
