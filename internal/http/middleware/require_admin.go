package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zone3577/Test-Web/internal/modules/adminauth"
)

const ctxKeyAdmin = "admin_identity"

// RequireAdmin gates the dashboard API on a bearer token issued by the
// admin login. The token's signature and exp claim carry session validity.
func RequireAdmin(auth *adminauth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "admin authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		id, err := auth.VerifyToken(token)
		if err != nil {
			Fail(c, err)
			return
		}

		c.Set(ctxKeyAdmin, id)
		c.Next()
	}
}

// RequireSuperAdmin additionally demands the super_admin role. It must run
// after RequireAdmin.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := CurrentAdmin(c)
		if !ok || a.Role != adminauth.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "super admin privileges required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// CurrentAdmin retrieves the verified admin identity from the context.
func CurrentAdmin(c *gin.Context) (adminauth.Identity, bool) {
	v, ok := c.Get(ctxKeyAdmin)
	if !ok {
		return adminauth.Identity{}, false
	}
	id, ok := v.(adminauth.Identity)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
