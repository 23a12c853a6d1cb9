package common

import (
	"context"

	"github.com/google/uuid"

	"renthub/internal/models"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
	OriginKey contextKey = "origin"
)

// Origin is the network origin of a request, recorded in audit entries.
type Origin struct {
	IP        string
	UserAgent string
}

// GetUserIDFromContext extracts the authenticated user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext extracts the authenticated role from the request context
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleKey).(models.Role)
	return role, ok
}

// GetOriginFromContext extracts the request origin, if one was recorded.
func GetOriginFromContext(ctx context.Context) (Origin, bool) {
	origin, ok := ctx.Value(OriginKey).(Origin)
	return origin, ok
}
