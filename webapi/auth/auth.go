// Package auth holds the login, logout and registration routes.
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mfadel/papertrade/pkg/config"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/middleware"
	authsvc "github.com/mfadel/papertrade/pkg/service/auth"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/mfadel/papertrade/webapi/common"
)

// Routes registers the unauthenticated session routes.
func Routes(
	app *fiber.App,
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	cfg config.Jwt,
) {
	app.Get("/login", LoginPage())
	app.Post("/login", Login(authSvc, cfg))
	app.Get("/logout", Logout())
	app.Get("/register", RegisterPage())
	app.Post("/register", Register(authSvc, userSvc, cfg))
}

// LoginPage renders the login page.
func LoginPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{})
	}
}

// Login authenticates a username/password pair and establishes the
// session cookie.
func Login(authSvc *authsvc.Service, cfg config.Jwt) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginForm](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.RenderError(c, domain.ErrInvalidCredentials)
		}
		if err := setSession(c, authSvc, u, cfg); err != nil {
			return common.RenderError(c, err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// Logout clears the session unconditionally.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// RegisterPage renders the registration page.
func RegisterPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("register", fiber.Map{})
	}
}

// Register creates an account and logs the new user straight in.
func Register(
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	cfg config.Jwt,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterForm](c)
		if input == nil {
			return err
		}
		if input.Password != input.Confirmation {
			return common.RenderError(c, domain.ErrPasswordMismatch)
		}
		u, err := userSvc.Register(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.RenderError(c, err)
		}
		if err := setSession(c, authSvc, u, cfg); err != nil {
			return common.RenderError(c, err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

func setSession(
	c *fiber.Ctx,
	authSvc *authsvc.Service,
	u *dto.UserRead,
	cfg config.Jwt,
) error {
	token, err := authSvc.GenerateToken(u)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(cfg.Expiry),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
