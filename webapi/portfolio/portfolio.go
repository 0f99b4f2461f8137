// Package portfolio holds the authenticated routes: the portfolio view,
// buy, sell, quote, and history.
package portfolio

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/config"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/middleware"
	authsvc "github.com/mfadel/papertrade/pkg/service/auth"
	tradingsvc "github.com/mfadel/papertrade/pkg/service/trading"
	"github.com/mfadel/papertrade/webapi/common"
)

// Routes registers the session-protected portfolio routes.
func Routes(
	app *fiber.App,
	tradingSvc *tradingsvc.Service,
	authSvc *authsvc.Service,
	cfg config.Jwt,
) {
	protected := middleware.Protected(cfg)
	app.Get("/", protected, Index(tradingSvc, authSvc))
	app.Get("/buy", protected, BuyPage())
	app.Post("/buy", protected, Buy(tradingSvc, authSvc))
	app.Get("/sell", protected, SellPage())
	app.Post("/sell", protected, Sell(tradingSvc, authSvc))
	app.Get("/quote", protected, QuotePage())
	app.Post("/quote", protected, Quote(tradingSvc))
	app.Get("/history", protected, History(tradingSvc, authSvc))
}

// Index renders the user's priced portfolio.
func Index(
	tradingSvc *tradingsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		p, err := tradingSvc.Portfolio(c.Context(), userID)
		if err != nil {
			return common.RenderError(c, err)
		}
		return c.Render("portfolio", fiber.Map{
			"Positions": p.Positions,
			"Cash":      p.Cash,
			"Total":     p.Total,
		})
	}
}

// BuyPage renders the buy form.
func BuyPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("buy", fiber.Map{})
	}
}

// Buy executes a buy and redirects to the portfolio.
func Buy(
	tradingSvc *tradingsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		input, err := common.BindAndValidate[TradeForm](c)
		if input == nil {
			return err
		}
		shares, err := parseShares(input.Shares)
		if err != nil {
			return common.RenderError(c, err)
		}
		if _, err := tradingSvc.Buy(
			c.Context(), userID, input.Symbol, shares,
		); err != nil {
			return common.RenderError(c, err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// SellPage renders the sell form.
func SellPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("sell", fiber.Map{})
	}
}

// Sell executes a sell and redirects to the portfolio.
func Sell(
	tradingSvc *tradingsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		input, err := common.BindAndValidate[TradeForm](c)
		if input == nil {
			return err
		}
		shares, err := parseShares(input.Shares)
		if err != nil {
			return common.RenderError(c, err)
		}
		if _, err := tradingSvc.Sell(
			c.Context(), userID, input.Symbol, shares,
		); err != nil {
			return common.RenderError(c, err)
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// QuotePage renders the quote form.
func QuotePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("quote", fiber.Map{})
	}
}

// Quote looks up a symbol and renders its current price.
func Quote(tradingSvc *tradingsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[QuoteForm](c)
		if input == nil {
			return err
		}
		q, err := tradingSvc.Quote(c.Context(), input.Symbol)
		if err != nil {
			return common.RenderError(c, err)
		}
		return c.Render("quoted", fiber.Map{
			"Symbol": q.Symbol,
			"Name":   q.Name,
			"Price":  q.Price,
		})
	}
}

// History renders the user's full transaction ledger, oldest first.
func History(
	tradingSvc *tradingsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		history, err := tradingSvc.History(c.Context(), userID)
		if err != nil {
			return common.RenderError(c, err)
		}
		return c.Render("history", fiber.Map{
			"Transactions": history,
		})
	}
}

func currentUserID(
	c *fiber.Ctx,
	authSvc *authsvc.Service,
) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return authSvc.CurrentUserID(token)
}

func parseShares(raw string) (int64, error) {
	shares, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || shares <= 0 {
		return 0, domain.ErrInvalidShares
	}
	return shares, nil
}
