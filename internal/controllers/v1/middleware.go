package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/timeaway/backend/internal/models"
)

const accountKey = "account"

// Authenticate verifies the bearer token of the request and stores the
// authenticated account in the gin context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(status(errMissingToken), httpError{Error: errMissingToken.Error()})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(status(errInvalidToken), httpError{Error: errInvalidToken.Error()})
			return
		}

		claims, err := parseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(status(errInvalidToken), httpError{Error: errInvalidToken.Error()})
			return
		}

		account, err := models.GetAccount(models.DB, id)
		if err != nil {
			c.AbortWithStatusJSON(status(errInvalidToken), httpError{Error: errInvalidToken.Error()})
			return
		}

		c.Set(accountKey, account)
	}
}

// RequireAdmin aborts the request unless the authenticated account has
// the admin role. It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentAccount(c).Role != models.RoleAdmin {
			c.AbortWithStatusJSON(status(models.ErrForbidden), httpError{Error: models.ErrForbidden.Error()})
			return
		}
	}
}

// currentAccount returns the account Authenticate stored for the request.
func currentAccount(c *gin.Context) models.Account {
	return c.MustGet(accountKey).(models.Account)
}
