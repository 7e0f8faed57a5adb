package auth

import (
	"net/http"
	"testing"

	"placement_backend/internal/models"
	"placement_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func student(id uint) *models.User {
	u := &models.User{Role: models.UserRoleStudent}
	u.ID = id
	return u
}

func admin(id uint) *models.User {
	u := &models.User{Role: models.UserRoleAdmin}
	u.ID = id
	return u
}

func httpCode(t *testing.T, err error) int {
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok, "expected *AppError, got %v", err)
	return appErr.HTTPCode
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(admin(1), models.UserRoleAdmin))
	assert.NoError(t, Authorize(student(1), models.UserRoleStudent))

	err := Authorize(nil, models.UserRoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	err = Authorize(student(1), models.UserRoleAdmin)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	err = Authorize(admin(1), models.UserRoleStudent)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestAuthorizeOwner(t *testing.T) {
	assert.NoError(t, AuthorizeOwner(student(7), 7))
	assert.NoError(t, AuthorizeOwner(admin(1), 7), "admins bypass owner-scoping")

	err := AuthorizeOwner(student(7), 8)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	err = AuthorizeOwner(nil, 7)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))
}

func TestAuthorizeAny(t *testing.T) {
	assert.NoError(t, AuthorizeAny(student(1)))
	assert.NoError(t, AuthorizeAny(admin(1)))
	assert.Error(t, AuthorizeAny(nil))
}
