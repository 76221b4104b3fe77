package middleware

import (
	"context"
	"errors"

	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
)

var errNoSession = errors.New("no session in context")

// SessionResolver resolves the current request's session user. The default
// implementation reads what SessionMiddleware stored in the context; tests can
// substitute their own.
type SessionResolver func(ctx context.Context) (*auth.SessionUser, error)

// ResolveSession is the context-backed SessionResolver used by handlers.
func ResolveSession(ctx context.Context) (*auth.SessionUser, error) {
	user, ok := GetSessionUser(ctx)
	if !ok || user == nil {
		return nil, errNoSession
	}

	return user, nil
}

// RequireSession resolves the caller's session or rejects with 401. Pure
// check: it never touches persistence.
func RequireSession(ctx context.Context, resolve SessionResolver) (*auth.SessionUser, *endpoint.ApiError) {
	user, err := resolve(ctx)
	if err != nil {
		return nil, endpoint.UnauthenticatedError("Authentication required")
	}

	return user, nil
}

// RequireAdmin resolves the caller's session and verifies the ADMIN role.
// Every administrative handler runs this identical check before touching
// persistence.
func RequireAdmin(ctx context.Context, resolve SessionResolver) (*auth.SessionUser, *endpoint.ApiError) {
	user, apiErr := RequireSession(ctx, resolve)
	if apiErr != nil {
		return nil, apiErr
	}

	if !user.IsAdmin() {
		return nil, endpoint.ForbiddenError("Only administrators can perform this action")
	}

	return user, nil
}
