package middleware

import (
	"strings"

	"portal/internal/domain"
	"portal/internal/models"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// AuthRequired resolves the bearer token to a live admin account and stores
// it in the context.
func AuthRequired(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, domain.NewAuthentication("missing authorization header"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abort(c, domain.NewAuthentication("invalid authorization format"))
			return
		}
		u, err := authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// RequiredRoles returns the roles allowed to reach route, a gin full path.
// Nil means the route is public.
func RequiredRoles(route string) []string {
	switch {
	case underPrefix(route, "/api/admin/users"), underPrefix(route, "/api/admin/configs"):
		return []string{domain.RoleSuperAdmin}
	case underPrefix(route, "/api/admin"):
		return []string{domain.RoleSuperAdmin, domain.RoleAdmin}
	default:
		return nil
	}
}

func underPrefix(route, prefix string) bool {
	return route == prefix || strings.HasPrefix(route, prefix+"/")
}

// Authorize enforces RequiredRoles for the matched route. It must run after
// AuthRequired on protected groups.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := RequiredRoles(c.FullPath())
		if roles == nil {
			c.Next()
			return
		}
		u := CurrentUser(c)
		if u == nil {
			abort(c, domain.NewAuthentication("authentication required"))
			return
		}
		if u.IsSuperAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		abort(c, domain.NewAuthorization("insufficient role for this resource"))
	}
}

// CurrentUser returns the account set by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *models.AdminUser {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.AdminUser)
	return u
}

// Operator names the current user for audit entries.
func Operator(c *gin.Context) string {
	if u := CurrentUser(c); u != nil {
		return u.Username
	}
	return "anonymous"
}

func abort(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	c.AbortWithStatusJSON(kind.HTTPStatus(), gin.H{"error": domain.MessageOf(err), "code": kind})
}
