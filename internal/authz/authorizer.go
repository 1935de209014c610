// Package authz provides authorization interfaces and implementations.
package authz

import "context"

// Authorizer defines the interface for role checks.
// Implementations can be swapped for an external policy service later.
type Authorizer interface {
	// IsAdmin checks whether the user identified by email has the admin role.
	// A missing user record is not an error; it simply reports false.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
