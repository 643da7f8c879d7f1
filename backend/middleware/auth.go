package middleware

import (
	"wellness/backend/config"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/utils"
)

// Guard wraps a handler with an access check.
type Guard func(router.Handler) router.Handler

// RequireUser verifies the bearer token and stores the resolved profile in
// the context. Requests without a valid token are rejected.
func RequireUser(cfg *config.Config) Guard {
	return func(next router.Handler) router.Handler {
		return func(c *router.Ctx) error {
			user, err := utils.ExtractUserFromToken(c, cfg)
			if err != nil {
				return utils.Unauthorized(c, "Unauthorized")
			}
			c.Locals("user", user)
			return next(c)
		}
	}
}

// OptionalUser resolves the profile when a valid token is present but lets
// anonymous requests through. List views use it to derive per-user fields
// without demanding a session.
func OptionalUser(cfg *config.Config) Guard {
	return func(next router.Handler) router.Handler {
		return func(c *router.Ctx) error {
			if user, err := utils.ExtractUserFromToken(c, cfg); err == nil {
				c.Locals("user", user)
			}
			return next(c)
		}
	}
}

// RequireAdmin verifies the token and additionally demands the ADMIN role.
func RequireAdmin(cfg *config.Config) Guard {
	return func(next router.Handler) router.Handler {
		return func(c *router.Ctx) error {
			user, err := utils.ExtractUserFromToken(c, cfg)
			if err != nil {
				return utils.Unauthorized(c, "Unauthorized")
			}
			if !user.IsAdmin() {
				return utils.Forbidden(c, "Forbidden - Admin access required")
			}
			c.Locals("user", user)
			return next(c)
		}
	}
}

// CurrentUser returns the profile a guard stored on the context, or nil.
func CurrentUser(c *router.Ctx) *models.SessionProfile {
	user, _ := c.Locals("user").(*models.SessionProfile)
	return user
}
