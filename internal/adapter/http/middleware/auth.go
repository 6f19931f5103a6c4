package middleware

import (
	"net/http"
	"strings"

	"idea_api/internal/infrastructure/security"
	"idea_api/pkg"

	"github.com/gin-gonic/gin"
)

var errNotEnoughPrivileges = pkg.NewDomainErrorSimple(
	"NOT_ENOUGH_PRIVILEGES",
	"You don't have enough privileges to access this data.",
	http.StatusForbidden,
)

// RequireRole gates a route group behind a bearer-token privilege check.
// The check runs before any handler, so a rejected request never reaches
// the database.
func RequireRole(access security.AccessManager, role security.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if !access.CheckUserPrivileges(token, role) {
			c.AbortWithStatusJSON(errNotEnoughPrivileges.HTTPStatus, errNotEnoughPrivileges.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}
