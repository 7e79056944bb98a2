package dto

// StockResponse represents the JSON structure returned by the
// GET /api/stocks/{ticker} endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type StockResponse struct {
	Stock      string  `json:"stock" example:"AAPL"`        // Ticker as requested by the caller
	Price      float64 `json:"price" example:"153.00"`      // Current price, rounded to 2 decimals
	Percent    float64 `json:"percent" example:"2.00"`      // Percent change vs. previous close
	Percent1Mo float64 `json:"percent_1mo" example:"9.29"`  // Percent change over the last month
	Percent6Mo float64 `json:"percent_6mo" example:"27.50"` // Percent change over the last six months
	Percent1Y  float64 `json:"percent_1y" example:"53.00"`  // Percent change over the last year
}
