package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthenticated is returned when no valid identity is established
	// for a protected operation.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Trading errors
var (
	// ErrMissingSymbol is returned when a trade or quote request carries
	// no ticker symbol.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrInvalidShares is returned when the share count is not a positive
	// non-zero integer.
	ErrInvalidShares = errors.New("invalid shares")
	// ErrInvalidSymbol is returned when a trade references a ticker the
	// quote provider does not know.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrSymbolNotFound is returned by the quote provider for an unknown
	// ticker.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrInsufficientFunds is returned when a buy exceeds the user's cash.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrSymbolNotOwned is returned when selling a symbol the user holds
	// no shares of.
	ErrSymbolNotOwned = errors.New("symbol not owned")
	// ErrInsufficientShares is returned when a sell exceeds the user's
	// net holding.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrQuoteUnavailable is returned when the quote provider cannot be
	// reached or answers with garbage.
	ErrQuoteUnavailable = errors.New("quote service unavailable")
)

// Credential errors
var (
	// ErrInvalidCredentials is returned when the username or password is
	// wrong. Deliberately a single error for both cases.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDuplicateUsername is returned when registering a username that
	// already exists.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrPasswordMismatch is returned when password and confirmation
	// disagree at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
