package handlers

import (
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authAs fakes an authenticated request by seeding the context the way the
// auth middleware does.
func authAs(userID uuid.UUID, email, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, email)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}
