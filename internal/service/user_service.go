package service

import (
	"context"
	"errors"
	"time"

	"forum-api/internal/cache"
	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
	"forum-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const membershipCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

// Register creates a user unless the email is already registered.
// Registration is idempotent: a duplicate email is reported as success with a
// null inserted id, matching the API contract clients depend on.
func (s *UserService) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.RegisterUserResponse, error) {
	user := &models.User{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return &models.RegisterUserResponse{Message: "user already exists", InsertedID: nil}, nil
		}
		return nil, err
	}

	return &models.RegisterUserResponse{Message: "user created", InsertedID: &user.ID}, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// IsAdmin reports whether the user with the given email has the admin role.
// An unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == models.RoleAdmin, nil
}

// GetMembership retrieves a user's badge and post count (with caching).
func (s *UserService) GetMembership(ctx context.Context, email string) (*models.MembershipResponse, error) {
	cacheKey := cache.MembershipCacheKey(email)
	var cached models.MembershipResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil // Cache hit
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	membership := &models.MembershipResponse{
		Badge:     user.Badge,
		PostCount: user.PostCount,
	}
	if membership.Badge == "" {
		membership.Badge = models.BadgeNone
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, membership, membershipCacheTTL)

	return membership, nil
}

// UpgradeMembership sets a user's badge to Gold.
func (s *UserService) UpgradeMembership(ctx context.Context, email string) error {
	if err := s.repo.SetBadge(ctx, email, models.BadgeGold); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.MembershipCacheKey(email))

	return nil
}

// PromoteToAdmin sets a user's role to admin. Repeated promotion is a no-op.
func (s *UserService) PromoteToAdmin(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	return s.repo.SetRole(ctx, objectID, models.RoleAdmin)
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	// Look up the email first so the membership cache can be invalidated.
	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.MembershipCacheKey(user.Email))

	return nil
}
