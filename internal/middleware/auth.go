package middleware

import (
	"strconv"

	"placement_backend/internal/auth"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/pkg/apperrors"
	"placement_backend/pkg/contextkeys"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionPrincipal deserializes the session and, when it carries a user ID,
// loads the principal and binds it to the request. It never aborts: routes
// that require authentication layer RequireAuth/RequireRole on top.
func SessionPrincipal(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		idVal := session.Get(contextkeys.SessionUserIDKey)
		if idVal == nil {
			c.Next()
			return
		}

		userID, ok := idVal.(uint)
		if !ok {
			// Stale session written before the ID type settled; drop it.
			session.Clear()
			_ = session.Save()
			c.Next()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if err == repositories.ErrUserNotFound {
				session.Clear()
				_ = session.Save()
			} else {
				logger.CtxWithError(c.Request.Context(), "failed to load session principal", err)
			}
			c.Next()
			return
		}

		c.Set(contextkeys.CurrentUserKey, user)
		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(user.ID), 10))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentUser returns the principal bound to this request, or nil for an
// anonymous request.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth denies anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.AuthorizeAny(CurrentUser(c)); err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole denies requests whose principal is absent or carries a
// different role. Applied declaratively per route group.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(CurrentUser(c), role); err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// BindPrincipal writes the user's ID into the session, establishing the
// authenticated state.
func BindPrincipal(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(contextkeys.SessionUserIDKey, user.ID)
	return session.Save()
}

// UnbindPrincipal clears the session. Idempotent.
func UnbindPrincipal(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
