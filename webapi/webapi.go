// Package webapi assembles the Fiber application: views, middleware and
// routes.
package webapi

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/mfadel/papertrade/pkg/config"
	authsvc "github.com/mfadel/papertrade/pkg/service/auth"
	tradingsvc "github.com/mfadel/papertrade/pkg/service/trading"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/mfadel/papertrade/webapi/auth"
	"github.com/mfadel/papertrade/webapi/common"
	"github.com/mfadel/papertrade/webapi/portfolio"
)

//go:embed views/*.html
var viewsFS embed.FS

// SetupApp builds the Fiber app with all middleware and routes.
func SetupApp(
	cfg *config.App,
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	tradingSvc *tradingsvc.Service,
) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("usd", common.USD)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layout",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.RenderErrorMessage(
				c, fiber.StatusInternalServerError, "something went wrong")
		},
	})

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
	}))
	// Responses carry user balances; never let them be cached.
	app.Use(func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	})

	auth.Routes(app, authSvc, userSvc, cfg.Jwt)
	portfolio.Routes(app, tradingSvc, authSvc, cfg.Jwt)
	return app
}
