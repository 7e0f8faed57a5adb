package services

import (
	"context"
	"testing"

	"placement_backend/internal/models"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(username, password, role string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: username,
		Password: password,
		Role:     role,
		FullName: "Test User",
		Email:    username + "@example.com",
		Phone:    "1234567890",
	}
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), registerReq("alice", "s3cret", "student"))
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleStudent, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "the password must never be stored in the clear")

	loggedIn, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq("alice", "s3cret", "student"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("alice", "other", "admin"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq("mallory", "s3cret", "superuser"))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// Wrong password and unknown username must be indistinguishable to the
// caller: same code, same message, same status.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq("alice", "s3cret", "student"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, wrongPassword)
	_, unknownUser := svc.Login(context.Background(), "nobody", "wrong")
	require.Error(t, unknownUser)

	wpErr, ok := apperrors.AsAppError(wrongPassword)
	require.True(t, ok)
	uuErr, ok := apperrors.AsAppError(unknownUser)
	require.True(t, ok)

	assert.Equal(t, wpErr.Code, uuErr.Code)
	assert.Equal(t, wpErr.Message, uuErr.Message)
	assert.Equal(t, wpErr.HTTPCode, uuErr.HTTPCode)
	assert.Equal(t, 401, wpErr.HTTPCode)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), 42)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
