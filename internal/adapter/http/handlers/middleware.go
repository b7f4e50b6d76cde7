package handlers

import (
	"net/http"
	"strings"

	"docecalc/pkg"

	"github.com/gin-gonic/gin"
)

// The application shell authenticates users and forwards the tenant in
// X-User-ID. This service trusts that header and only scopes data by it.
const (
	userIDHeader     = "X-User-ID"
	userIDContextKey = "user_id"
)

var errMissingUser = pkg.NewDomainErrorSimple("MISSING_USER", "Missing X-User-ID header", http.StatusUnauthorized)

// RequireUser aborts requests that arrive without a tenant identifier.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(userIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
			return
		}
		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}
