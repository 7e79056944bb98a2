package models

// Quote is the current-market snapshot returned by the provider for a symbol.
//
// Fields:
//   - Symbol: the ticker the provider resolved the request to.
//   - RegularMarketPrice: last traded price; nil when the provider does not
//     recognize the symbol (the field is simply absent from the payload).
//   - PreviousClose: closing price of the prior trading session.
type Quote struct {
	Symbol             string
	RegularMarketPrice *float64
	PreviousClose      float64
}

// HasPrice reports whether the provider returned a usable current price.
// A quote without one means the ticker is not a tradable security.
func (q *Quote) HasPrice() bool {
	return q != nil && q.RegularMarketPrice != nil
}
