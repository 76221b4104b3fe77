package middleware

import (
	"context"
	baseHttp "net/http"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
)

type sessionContextKey string

const SessionUserKey sessionContextKey = "session.user"

// SessionMiddleware validates Authorization Bearer tokens and injects the
// session user into the request context.
type SessionMiddleware struct {
	Handler auth.SessionHandler
}

// Handle checks the Authorization header for a valid session token.
func (m SessionMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return endpoint.UnauthenticatedError("Authentication required")
		}

		tokenStr := strings.TrimSpace(header[len("bearer "):])

		claims, err := m.Handler.Validate(tokenStr)
		if err != nil {
			return endpoint.UnauthenticatedError("Authentication required")
		}

		user := claims.SessionUser()
		ctx := context.WithValue(r.Context(), SessionUserKey, &user)

		return next(w, r.WithContext(ctx))
	}
}

// GetSessionUser extracts the session user from the context.
func GetSessionUser(ctx context.Context) (*auth.SessionUser, bool) {
	user, ok := ctx.Value(SessionUserKey).(*auth.SessionUser)

	return user, ok
}
