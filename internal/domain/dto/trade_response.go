package dto

import "time"

// SubmitTradeResponse is returned by POST /api/v1/trades on success.
//
// swagger:model SubmitTradeResponse
type SubmitTradeResponse struct {
	Message string `json:"message" example:"trade submitted successfully"`
	TradeID int64  `json:"trade_id" example:"42"`
}

// TickerStatsResponse is one entry of the per-ticker stats mapping
// returned by GET /api/v1/stats.
//
// swagger:model TickerStatsResponse
type TickerStatsResponse struct {
	HighestPrice float64 `json:"highest_price" example:"20.5"`
	LowestPrice  float64 `json:"lowest_price" example:"10.0"`
	TotalVolume  int64   `json:"total_volume" example:"400"`
	TotalValue   float64 `json:"total_value" example:"6100.0"`
	VWAP         float64 `json:"vwap" example:"15.25"`
}

// HistoricalTradeResponse is one row of the historical listing returned
// by GET /api/v1/trades.
//
// swagger:model HistoricalTradeResponse
type HistoricalTradeResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Ticker    string    `json:"ticker" example:"AAPL"`
	Side      string    `json:"side" example:"buy"`
	Price     float64   `json:"price" example:"187.3"`
	Volume    int64     `json:"volume" example:"100"`
	Status    string    `json:"status" example:"successful"`
}

// HistoryResponse wraps the historical trade listing.
//
// swagger:model HistoryResponse
type HistoryResponse struct {
	HistoricalTrades []HistoricalTradeResponse `json:"historical_trades"`
}
