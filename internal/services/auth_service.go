package services

import (
	"context"

	"placement_backend/internal/auth"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// placeholderHash is verified against when the username is unknown, so the
// unknown-user and wrong-password paths cost the same scrypt work.
var placeholderHash, _ = auth.HashPassword("placeholder-for-timing")

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError("Role must be either 'student' or 'admin'")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err, "Username already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "username", user.Username, "role", string(user.Role))
	return user, nil
}

// Login never reveals whether the username or the password was wrong: both
// failures return the same error and perform the same hashing work.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			auth.VerifyPassword(password, placeholderHash)
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	logger.CtxInfo(ctx, "user logged in", "username", user.Username)
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
