package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/domain/user"
)

// LoadActor resolves the authenticated user id into a user row so handlers
// see the current role, not the one at token issue time.
func LoadActor(users user.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint64(CtxUserID)
		if userID == 0 {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "unauthenticated"},
			)
			return
		}

		u, err := users.FetchUserByID(c.Request.Context(), user.ID(userID))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to load user"},
			)
			logger.Error("FetchUserByID() error", zap.Error(err))
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "unknown user"},
			)
			return
		}

		c.Set(CtxActor, u)

		c.Next()
	}
}

// Actor returns the user set by LoadActor, or nil.
func Actor(c *gin.Context) *user.User {
	v, ok := c.Get(CtxActor)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}
