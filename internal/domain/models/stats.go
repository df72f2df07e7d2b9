package models

// TickerStats holds the aggregated figures for a single ticker within one
// user's trade history.
//
// TotalValue is the sum of price*volume over all trades; VWAP is
// TotalValue / TotalVolume (volume-weighted average price).
type TickerStats struct {
	HighestPrice float64
	LowestPrice  float64
	TotalVolume  int64
	TotalValue   float64
	VWAP         float64
}
