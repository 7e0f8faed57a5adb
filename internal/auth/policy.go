package auth

import (
	"placement_backend/internal/models"
	"placement_backend/pkg/apperrors"
)

// Authorize checks a principal against a required role. The same function
// backs every protected endpoint so the role rules live in one place instead
// of being repeated inline per route.
func Authorize(user *models.User, required models.UserRole) error {
	if user == nil {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	if user.Role != required {
		return apperrors.NewForbiddenError("Insufficient privilege")
	}
	return nil
}

// AuthorizeAny allows any authenticated principal.
func AuthorizeAny(user *models.User) error {
	if user == nil {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	return nil
}

// AuthorizeOwner gates owner-scoped resources: non-admin principals may only
// touch resources they own; admins bypass owner-scoping (but not role checks
// applied elsewhere). The denial carries no hint of whether the target exists.
func AuthorizeOwner(user *models.User, ownerID uint) error {
	if user == nil {
		return apperrors.NewUnauthorizedError("Authentication required")
	}
	if user.IsAdmin() {
		return nil
	}
	if user.ID != ownerID {
		return apperrors.NewForbiddenError("Insufficient privilege")
	}
	return nil
}
