package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserService(t *testing.T) {
	repo := &stubUserRepo{}
	cache := &stubCache{}

	service := NewUserService(repo, cache)

	assert.NotNil(t, service)
	assert.Equal(t, repo, service.repo)
	assert.Equal(t, cache, service.cache)
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates a new user", func(t *testing.T) {
		newID := primitive.NewObjectID()
		repo := &stubUserRepo{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				user.ID = newID
				return nil
			},
		}

		service := NewUserService(repo, &stubCache{})
		resp, err := service.Register(context.Background(), &models.RegisterUserRequest{
			Email: "new@example.com",
			Name:  "New User",
		})

		require.NoError(t, err)
		assert.Equal(t, "user created", resp.Message)
		require.NotNil(t, resp.InsertedID)
		assert.Equal(t, newID, *resp.InsertedID)
	})

	t.Run("duplicate email reports success with null id", func(t *testing.T) {
		repo := &stubUserRepo{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				return apperrors.ErrUserAlreadyExists
			},
		}

		service := NewUserService(repo, &stubCache{})
		resp, err := service.Register(context.Background(), &models.RegisterUserRequest{
			Email: "existing@example.com",
			Name:  "Existing User",
		})

		require.NoError(t, err)
		assert.Equal(t, "user already exists", resp.Message)
		assert.Nil(t, resp.InsertedID)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := &stubUserRepo{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				return errors.New("connection reset")
			},
		}

		service := NewUserService(repo, &stubCache{})
		resp, err := service.Register(context.Background(), &models.RegisterUserRequest{
			Email: "new@example.com",
			Name:  "New User",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		repoErr  error
		expected bool
		wantErr  bool
	}{
		{
			name:     "admin user",
			user:     &models.User{Email: "admin@example.com", Role: models.RoleAdmin},
			expected: true,
		},
		{
			name:     "regular user",
			user:     &models.User{Email: "user@example.com"},
			expected: false,
		},
		{
			name:     "unknown email is not admin",
			repoErr:  apperrors.ErrUserNotFound,
			expected: false,
		},
		{
			name:    "store error propagates",
			repoErr: errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubUserRepo{
				FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return tt.user, nil
				},
			}

			service := NewUserService(repo, &stubCache{})
			admin, err := service.IsAdmin(context.Background(), "someone@example.com")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, admin)
		})
	}
}

func TestUserService_GetMembership(t *testing.T) {
	t.Run("returns cached membership on hit", func(t *testing.T) {
		repoCalled := false
		repo := &stubUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				repoCalled = true
				return nil, apperrors.ErrUserNotFound
			},
		}
		cache := &stubCache{
			GetFunc: func(ctx context.Context, key string, dest interface{}) (bool, error) {
				m := dest.(*models.MembershipResponse)
				*m = models.MembershipResponse{Badge: models.BadgeGold, PostCount: 7}
				return true, nil
			},
		}

		service := NewUserService(repo, cache)
		membership, err := service.GetMembership(context.Background(), "gold@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.BadgeGold, membership.Badge)
		assert.Equal(t, 7, membership.PostCount)
		assert.False(t, repoCalled)
	})

	t.Run("falls back to store and caches the result", func(t *testing.T) {
		repo := &stubUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{Email: email, Badge: models.BadgeGold, PostCount: 9}, nil
			},
		}
		var setKey string
		cache := &stubCache{
			SetFunc: func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
				setKey = key
				return nil
			},
		}

		service := NewUserService(repo, cache)
		membership, err := service.GetMembership(context.Background(), "gold@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.BadgeGold, membership.Badge)
		assert.Equal(t, 9, membership.PostCount)
		assert.Equal(t, "membership:gold@example.com", setKey)
	})

	t.Run("defaults empty badge to None", func(t *testing.T) {
		repo := &stubUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{Email: email, PostCount: 2}, nil
			},
		}

		service := NewUserService(repo, &stubCache{})
		membership, err := service.GetMembership(context.Background(), "free@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.BadgeNone, membership.Badge)
		assert.Equal(t, 2, membership.PostCount)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		repo := &stubUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		service := NewUserService(repo, &stubCache{})
		_, err := service.GetMembership(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpgradeMembership(t *testing.T) {
	t.Run("sets gold badge and invalidates cache", func(t *testing.T) {
		var gotBadge string
		repo := &stubUserRepo{
			SetBadgeFunc: func(ctx context.Context, email, badge string) error {
				gotBadge = badge
				return nil
			},
		}
		var deletedKey string
		cache := &stubCache{
			DeleteFunc: func(ctx context.Context, key string) error {
				deletedKey = key
				return nil
			},
		}

		service := NewUserService(repo, cache)
		err := service.UpgradeMembership(context.Background(), "free@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.BadgeGold, gotBadge)
		assert.Equal(t, "membership:free@example.com", deletedKey)
	})

	t.Run("missing user propagates", func(t *testing.T) {
		repo := &stubUserRepo{
			SetBadgeFunc: func(ctx context.Context, email, badge string) error {
				return apperrors.ErrUserNotFound
			},
		}

		service := NewUserService(repo, &stubCache{})
		err := service.UpgradeMembership(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	t.Run("sets admin role", func(t *testing.T) {
		var gotRole string
		repo := &stubUserRepo{
			SetRoleFunc: func(ctx context.Context, id primitive.ObjectID, role string) error {
				gotRole = role
				return nil
			},
		}

		service := NewUserService(repo, &stubCache{})
		err := service.PromoteToAdmin(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, gotRole)
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		service := NewUserService(&stubUserRepo{}, &stubCache{})
		err := service.PromoteToAdmin(context.Background(), "not-an-id")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deletes user and invalidates membership cache", func(t *testing.T) {
		userID := primitive.NewObjectID()
		repo := &stubUserRepo{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return &models.User{ID: userID, Email: "gone@example.com"}, nil
			},
		}
		var deletedKey string
		cache := &stubCache{
			DeleteFunc: func(ctx context.Context, key string) error {
				deletedKey = key
				return nil
			},
		}

		service := NewUserService(repo, cache)
		err := service.DeleteUser(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "membership:gone@example.com", deletedKey)
	})

	t.Run("malformed id maps to not found", func(t *testing.T) {
		service := NewUserService(&stubUserRepo{}, &stubCache{})
		err := service.DeleteUser(context.Background(), "xyz")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("missing user propagates", func(t *testing.T) {
		repo := &stubUserRepo{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		service := NewUserService(repo, &stubCache{})
		err := service.DeleteUser(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
