package middleware

import (
	"net/http"
	"strings"

	"geosolar-backoffice/internal/auth"
	"geosolar-backoffice/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Guard gates every request before any handler runs. It resolves the
// bearer token to an identity (nil when absent or invalid) and defers the
// allow/deny decision to the rbac guard tables. Unauthenticated and
// unauthorized are reported differently on purpose: the former gets a
// login redirect carrying the original destination, the latter an
// explanation of which roles the route accepts.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := resolveIdentity(c)

		decision := rbac.Evaluate(c.Request.Method, c.Request.RequestURI, ident)
		switch decision.Outcome {
		case rbac.Allow:
			if ident != nil {
				c.Set("userID", ident.UserID)
				c.Set("role", string(ident.Role))
			}
			c.Next()

		case rbac.DenyUnauthenticated:
			// No hint about why the session was rejected.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":       "authentication required",
				"redirect_to": decision.RedirectTo,
			})
			c.Abort()

		case rbac.DenyUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{
				"error":         decision.Reason,
				"your_role":     string(decision.CallerRole),
				"allowed_roles": decision.AllowedRoles,
			})
			c.Abort()
		}
	}
}

// resolveIdentity pulls "Bearer <token>" apart and validates it. Any
// defect (missing header, bad prefix, forged or expired token, unknown
// role string) resolves to nil, i.e. unauthenticated.
func resolveIdentity(c *gin.Context) *rbac.Identity {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil
	}

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		return nil
	}

	role, ok := rbac.ParseRole(claims.Role)
	if !ok {
		return nil
	}

	return &rbac.Identity{UserID: claims.UserID, Role: role}
}
