package utils

import (
	"context"
	"slices"
)

// SetUserContext sets the authenticated identity into context (called by middleware)
func SetUserContext(ctx context.Context, id uint, email string, roles []string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRolesKey, roles)
	return ctx
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func GetUserEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

func GetUserRolesFromContext(ctx context.Context) []string {
	roles, _ := ctx.Value(UserRolesKey).([]string)
	return roles
}

// HasRole reports whether the identity in ctx carries role.
func HasRole(ctx context.Context, role string) bool {
	return slices.Contains(GetUserRolesFromContext(ctx), role)
}
