package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const SessionUserKey contextKey = "session_user"

// SessionUser is the authenticated-identity snapshot carried on the request
// context by the session middleware. Handlers read it instead of consulting
// any ambient state.
type SessionUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func SetSessionUser(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserKey, user)
}

func GetSessionUser(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(SessionUserKey).(SessionUser)
	return user, ok
}
