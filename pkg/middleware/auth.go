// Package middleware provides the session gate for protected routes.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/mfadel/papertrade/pkg/config"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// Protected verifies the session cookie before the handler runs.
// Browsers without a valid session are redirected to the login page;
// the verified token is left in c.Locals("user") for handlers.
func Protected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.Secret)},
		TokenLookup: "cookie:" + SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Redirect("/login", fiber.StatusSeeOther)
		},
	})
}
