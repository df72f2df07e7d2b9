package models

import "time"

// Side is the direction of a trade order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Status is the lifecycle state of a persisted trade.
//
// A trade is created as StatusPending and moves exactly once to either
// StatusSuccessful or StatusFailed. Both are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
)

// Trade represents one persisted trade order.
//
// Fields:
//   - ID: store-assigned, immutable after creation.
//   - UserID: owner of the trade; free-form, no user registry exists.
//   - Ticker: instrument symbol; not checked against an instrument list.
//   - Side: buy or sell.
//   - Price: unit price, always > 0 for persisted rows.
//   - Volume: traded quantity, always > 0 for persisted rows.
//   - Timestamp: assigned by the database at insert time.
//   - Status: pending until the submission workflow settles it.
type Trade struct {
	ID        int64
	UserID    string
	Ticker    string
	Side      Side
	Price     float64
	Volume    int64
	Timestamp time.Time
	Status    Status
}

// TradeSubmission is a validated trade request, ready to be persisted.
// ID, timestamp and status are assigned by the store at insert time.
type TradeSubmission struct {
	UserID string
	Ticker string
	Side   Side
	Price  float64
	Volume int64
}
