package models

// Window is a fixed historical lookback period over which percent change is
// computed from the first to the last recorded daily close.
type Window string

const (
	Window1Mo Window = "1mo"
	Window6Mo Window = "6mo"
	Window1Y  Window = "1y"
)

// Windows lists every reported lookback period. A stock report always carries
// a percent change for each of them.
var Windows = []Window{Window1Mo, Window6Mo, Window1Y}
