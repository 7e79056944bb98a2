package models

// StockReport is the computed result for one ticker: the rounded current
// price, the percent change against the previous close, and the percent
// change over each historical window.
//
// All numeric fields are rounded to two decimal places.
//
// swagger:model StockReport
type StockReport struct {
	Stock      string  `json:"stock" example:"AAPL"`
	Price      float64 `json:"price" example:"153.00"`
	Percent    float64 `json:"percent" example:"2.00"`
	Percent1Mo float64 `json:"percent_1mo" example:"9.29"`
	Percent6Mo float64 `json:"percent_6mo" example:"27.50"`
	Percent1Y  float64 `json:"percent_1y" example:"53.00"`
}

// SetWindowPercent stores a computed percent change under its window.
func (r *StockReport) SetWindowPercent(w Window, pct float64) {
	switch w {
	case Window1Mo:
		r.Percent1Mo = pct
	case Window6Mo:
		r.Percent6Mo = pct
	case Window1Y:
		r.Percent1Y = pct
	}
}
