// Package middleware provides the authentication gate and role checks that
// guard every non-public route.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/models"
)

const userKey = "currentUser"

// Protect verifies the bearer token and loads the user it names. A token
// whose user no longer exists is treated as logged out. On success the user
// (without credential) is attached to the request context.
func Protect(tokens *auth.TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Not authorized, no token provided")
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "Not authorized, token invalid or expired")
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c, "User not found")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error in authentication",
			})
			return
		}

		user.Password = ""
		c.Set(userKey, &user)
		c.Next()
	}
}

// Authorize rejects callers whose role is not in the allow-list. It must run
// after Protect.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "Not authorized")
			return
		}
		if !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Role '" + string(user.Role) + "' is not authorized to access this resource",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Protect, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
