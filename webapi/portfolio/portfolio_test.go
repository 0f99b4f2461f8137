package portfolio_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mfadel/papertrade/internal/fixtures/mocks"
	"github.com/mfadel/papertrade/pkg/config"
	"github.com/mfadel/papertrade/pkg/domain"
	domaintrading "github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/middleware"
	authsvc "github.com/mfadel/papertrade/pkg/service/auth"
	tradingsvc "github.com/mfadel/papertrade/pkg/service/trading"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/mfadel/papertrade/webapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.App{
	Jwt:       config.Jwt{Secret: "test-secret", Expiry: time.Hour},
	RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	Trading:   config.Trading{StartingCash: decimal.RequireFromString("10000.00")},
}

type fixture struct {
	app    *fiber.App
	users  *mocks.MockUserRepository
	ledger *mocks.MockLedgerRepository
	quotes *mocks.MockQuoteProvider
	userID uuid.UUID
	cookie *http.Cookie
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	uow := &mocks.MockUnitOfWork{}
	users := &mocks.MockUserRepository{}
	ledger := &mocks.MockLedgerRepository{}
	quotes := &mocks.MockQuoteProvider{}
	uow.On("UserRepository").Return(users, nil).Maybe()
	uow.On("LedgerRepository").Return(ledger, nil).Maybe()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()

	authSvc := authsvc.New(uow, testCfg.Jwt, slog.Default())
	userSvc := usersvc.New(uow, testCfg.Trading.StartingCash, slog.Default())
	tradingSvc := tradingsvc.New(uow, quotes, slog.Default())
	app := webapi.SetupApp(testCfg, authSvc, userSvc, tradingSvc)

	userID := uuid.New()
	token, err := authSvc.GenerateToken(&dto.UserRead{ID: userID, Username: "alice"})
	require.NoError(t, err)

	return &fixture{
		app:    app,
		users:  users,
		ledger: ledger,
		quotes: quotes,
		userID: userID,
		cookie: &http.Cookie{Name: middleware.SessionCookie, Value: token},
	}
}

func (f *fixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(f.cookie)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *fixture) post(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path,
		strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(f.cookie)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func alice(id uuid.UUID, cash string) *dto.UserRead {
	return &dto.UserRead{
		ID:       id,
		Username: "alice",
		Cash:     decimal.RequireFromString(cash),
	}
}

func nflx(price string) *domaintrading.Quote {
	return &domaintrading.Quote{
		Symbol: "NFLX",
		Name:   "Netflix Inc",
		Price:  decimal.RequireFromString(price),
	}
}

func TestIndex_Unauthenticated(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestIndex_RendersPortfolio(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.users.On("Get", mock.Anything, f.userID).
		Return(alice(f.userID, "5000.00"), nil)
	f.ledger.On("Holdings", mock.Anything, f.userID).
		Return([]domaintrading.Holding{{Symbol: "NFLX", Shares: 10}}, nil)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("500.00"), nil)

	resp := f.get(t, "/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "NFLX")
	assert.Contains(t, html, "$5,000.00")  // cash and subtotal
	assert.Contains(t, html, "$10,000.00") // total
}

func TestIndex_QuoteOutageFailsClosed(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.users.On("Get", mock.Anything, f.userID).
		Return(alice(f.userID, "5000.00"), nil)
	f.ledger.On("Holdings", mock.Anything, f.userID).
		Return([]domaintrading.Holding{{Symbol: "NFLX", Shares: 10}}, nil)
	f.quotes.On("Lookup", mock.Anything, "NFLX").
		Return(nil, domain.ErrQuoteUnavailable)

	resp := f.get(t, "/")
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body(t, resp), "quote service unavailable")
}

func TestBuy_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("500.00"), nil)
	f.users.On("GetForUpdate", mock.Anything, f.userID).
		Return(alice(f.userID, "10000.00"), nil)
	f.users.On("UpdateCash", mock.Anything, f.userID,
		mock.MatchedBy(func(cash decimal.Decimal) bool {
			return cash.Equal(decimal.RequireFromString("5000.00"))
		})).Return(nil)
	f.ledger.On("Record", mock.Anything,
		mock.MatchedBy(func(create *dto.TransactionCreate) bool {
			return create.Symbol == "NFLX" && create.Shares == 10
		})).Return(nil)

	resp := f.post(t, "/buy", url.Values{
		"symbol": {"nflx"},
		"shares": {"10"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	f.users.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
}

func TestBuy_NegativeShares(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp := f.post(t, "/buy", url.Values{
		"symbol": {"NFLX"},
		"shares": {"-5"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "invalid shares")
	f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestBuy_NonNumericShares(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp := f.post(t, "/buy", url.Values{
		"symbol": {"NFLX"},
		"shares": {"ten"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestBuy_MissingSymbol(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp := f.post(t, "/buy", url.Values{"shares": {"10"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	f.quotes.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("500.00"), nil)
	f.users.On("GetForUpdate", mock.Anything, f.userID).
		Return(alice(f.userID, "100.00"), nil)

	resp := f.post(t, "/buy", url.Values{
		"symbol": {"NFLX"},
		"shares": {"10"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "can&#39;t afford")
	f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestSell_InsufficientShares(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("600.00"), nil)
	f.users.On("GetForUpdate", mock.Anything, f.userID).
		Return(alice(f.userID, "5000.00"), nil)
	f.ledger.On("HoldingForSymbol", mock.Anything, f.userID, "NFLX").
		Return(int64(10), nil)

	resp := f.post(t, "/sell", url.Values{
		"symbol": {"NFLX"},
		"shares": {"20"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "too many shares")
	f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	f.users.AssertNotCalled(t, "UpdateCash", mock.Anything, mock.Anything, mock.Anything)
}

func TestSell_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("600.00"), nil)
	f.users.On("GetForUpdate", mock.Anything, f.userID).
		Return(alice(f.userID, "5000.00"), nil)
	f.ledger.On("HoldingForSymbol", mock.Anything, f.userID, "NFLX").
		Return(int64(10), nil)
	f.users.On("UpdateCash", mock.Anything, f.userID,
		mock.MatchedBy(func(cash decimal.Decimal) bool {
			return cash.Equal(decimal.RequireFromString("11000.00"))
		})).Return(nil)
	f.ledger.On("Record", mock.Anything,
		mock.MatchedBy(func(create *dto.TransactionCreate) bool {
			return create.Shares == -10
		})).Return(nil)

	resp := f.post(t, "/sell", url.Values{
		"symbol": {"NFLX"},
		"shares": {"10"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	f.users.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
}

func TestQuote_UnknownSymbol(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "ZZZZ").
		Return(nil, domain.ErrSymbolNotFound)

	resp := f.post(t, "/quote", url.Values{"symbol": {"ZZZZ"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "invalid symbol")
}

func TestQuote_Renders(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.quotes.On("Lookup", mock.Anything, "NFLX").Return(nflx("500.00"), nil)

	resp := f.post(t, "/quote", url.Values{"symbol": {"nflx"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Netflix Inc")
	assert.Contains(t, html, "$500.00")
}

func TestHistory_Renders(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.ledger.On("History", mock.Anything, f.userID).
		Return([]*dto.TransactionRead{
			{
				Symbol:    "NFLX",
				Shares:    10,
				Price:     decimal.RequireFromString("500.00"),
				CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				Symbol:    "NFLX",
				Shares:    -10,
				Price:     decimal.RequireFromString("600.00"),
				CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			},
		}, nil)

	resp := f.get(t, "/history")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "$500.00")
	assert.Contains(t, html, "$600.00")
	assert.Contains(t, html, "-10")
	assert.Contains(t, html, "2024-01-01 10:00:00")
}

func TestFormPages_DoNotTouchState(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	for _, path := range []string{"/buy", "/sell", "/quote"} {
		resp := f.get(t, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "GET %s", path)
	}
	f.users.AssertNotCalled(t, "UpdateCash", mock.Anything, mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}
