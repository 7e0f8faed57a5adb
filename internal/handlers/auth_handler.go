package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// Register creates an account and establishes a session for it in one step.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := middleware.BindPrincipal(c, user); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	h.Created(c, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := middleware.BindPrincipal(c, user); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	h.OK(c, gin.H{"user": user})
}

// Logout clears the session. Calling it without one is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.UnbindPrincipal(c); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	h.OK(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated principal, or 401 for anonymous callers.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
