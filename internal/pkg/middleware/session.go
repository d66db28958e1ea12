package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/superblog/auth/internal/pkg/jwt"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
)

// SessionAuth validates the sb_session cookie and puts the subject into the
// echo context. The token is self-verifying; expiry is checked during parse.
func SessionAuth(sessionCfg models.SessionConfig, jwtCfg models.JWTConfig) echo.MiddlewareFunc {
	return cookieAuth(sessionCfg.CookieName, jwtCfg)
}

// AdminSessionAuth validates the admin session cookie. Role checks are
// layered on top with RequireRole.
func AdminSessionAuth(sessionCfg models.SessionConfig, jwtCfg models.JWTConfig) echo.MiddlewareFunc {
	return cookieAuth(sessionCfg.AdminCookieName, jwtCfg)
}

func cookieAuth(cookieName string, jwtCfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			claims, err := jwtpkg.ValidateToken(cookie.Value, jwtCfg.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			c.Set("user_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// RequireRole rejects requests whose session role is not in the allowed set.
// Destructive admin actions pass models.RoleSuperAdmin only.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := fmt.Sprintf("%v", c.Get("role"))
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "")
		}
	}
}
