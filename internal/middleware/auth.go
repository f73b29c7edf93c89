package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zeldean/DBD-Project/internal/models"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

const (
	HeaderUserEmail    = "x-user-email"
	HeaderUserPassword = "x-user-password"
	HeaderAdminToken   = "x-admin-token"

	contextUser = "user"
)

// CredentialStore is the user lookup the authentication middleware needs.
type CredentialStore interface {
	FindByCredentials(ctx context.Context, email, region, password string) (*models.User, error)
}

// Authenticate resolves the principal from the x-user-email and
// x-user-password headers. The lookup matches email, the already-resolved
// region, and the password in a single query, so a wrong password and a
// missing user are indistinguishable to the caller.
func Authenticate(store CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(HeaderUserEmail)
		password := c.GetHeader(HeaderUserPassword)
		if email == "" || password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing x-user-email or x-user-password header"})
			return
		}

		user, err := store.FindByCredentials(c.Request.Context(), strings.ToLower(email), Region(c), password)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate user"})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// Principal returns the authenticated user attached by Authenticate.
func Principal(c *gin.Context) *models.User {
	user, _ := c.MustGet(contextUser).(*models.User)
	return user
}

// RequireAdminToken gates admin routes behind the shared secret. There is
// no per-admin identity, only the token.
func RequireAdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" || c.GetHeader(HeaderAdminToken) != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin token"})
			return
		}
		c.Next()
	}
}
