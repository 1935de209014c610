package authz

import (
	"context"
	"errors"

	apperrors "forum-api/internal/errors"
	"forum-api/internal/models"
)

// UserFinder is the interface required by LocalAuthorizer to look up users.
// This keeps the authorizer decoupled from the full repository implementation.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// LocalAuthorizer implements Authorizer using a user lookup per check.
type LocalAuthorizer struct {
	userFinder UserFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(userFinder UserFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		userFinder: userFinder,
	}
}

// IsAdmin reports whether the user with the given email has the admin role.
func (a *LocalAuthorizer) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := a.userFinder.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == models.RoleAdmin, nil
}

var _ Authorizer = (*LocalAuthorizer)(nil)
