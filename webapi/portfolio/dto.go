package portfolio

// QuoteForm is the quote page's form body.
type QuoteForm struct {
	Symbol string `form:"symbol" validate:"required"`
}

// TradeForm is the buy and sell pages' form body. Shares is bound as a
// string and parsed explicitly so non-numeric and non-positive input
// both reject as invalid shares before any business logic runs.
type TradeForm struct {
	Symbol string `form:"symbol" validate:"required"`
	Shares string `form:"shares" validate:"required"`
}
