package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamsli/trading-service/internal/domain/models"
)

// ErrTradeNotFound reports that no trade matched the given id, or that a
// status update matched no pending row. Distinct from I/O errors so
// callers can tell an empty result from a broken store.
var ErrTradeNotFound = errors.New("trade not found")

// TradesRepository defines the contract for trade persistence.
//
// Consistency contract:
//   - InsertTrade is durable before returning; the row starts as
//     status=pending with a database-assigned timestamp.
//   - UpdateTradeStatus only moves a row out of pending, so the
//     pending → terminal transition happens exactly once; concurrent
//     readers never observe a status that was never assigned.
//   - GetTradesByUser returns rows in insertion order.
type TradesRepository interface {
	InsertTrade(ctx context.Context, sub models.TradeSubmission) (int64, error)
	UpdateTradeStatus(ctx context.Context, id int64, status models.Status) error
	GetTradeByID(ctx context.Context, id int64) (*models.Trade, error)
	GetTradesByUser(ctx context.Context, userID string) ([]models.Trade, error)
}

type tradesRepository struct {
	db *sql.DB
}

func NewTradesRepository(db *sql.DB) TradesRepository {
	return &tradesRepository{db: db}
}

// InsertTrade persists a new trade with status=pending. The id and
// timestamp are assigned by the database.
func (r *tradesRepository) InsertTrade(ctx context.Context, sub models.TradeSubmission) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO trades (user_id, ticker, side, price, volume, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, sub.UserID, sub.Ticker, string(sub.Side), sub.Price, sub.Volume, string(models.StatusPending)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert trade: %w", err)
	}
	return id, nil
}

// UpdateTradeStatus moves a pending trade to a terminal status. The WHERE
// guard makes the transition an atomic read-modify-write: a row already
// settled (or absent) matches nothing and yields ErrTradeNotFound.
func (r *tradesRepository) UpdateTradeStatus(ctx context.Context, id int64, status models.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE trades SET status = $2 WHERE id = $1 AND status = $3
	`, id, string(status), string(models.StatusPending))
	if err != nil {
		return fmt.Errorf("update trade status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trade status: %w", err)
	}
	if n == 0 {
		return ErrTradeNotFound
	}
	return nil
}

// GetTradeByID fetches a single trade, or ErrTradeNotFound.
func (r *tradesRepository) GetTradeByID(ctx context.Context, id int64) (*models.Trade, error) {
	var t models.Trade
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, ticker, side, price, volume, executed_at, status
		FROM trades WHERE id = $1
	`, id).Scan(&t.ID, &t.UserID, &t.Ticker, &t.Side, &t.Price, &t.Volume, &t.Timestamp, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trade by id: %w", err)
	}
	return &t, nil
}

// GetTradesByUser returns every trade owned by userID in insertion order.
// An empty result is ([], nil); callers decide whether that is not-found.
func (r *tradesRepository) GetTradesByUser(ctx context.Context, userID string) ([]models.Trade, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, ticker, side, price, volume, executed_at, status
		FROM trades WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("get trades by user: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		if err := rows.Scan(&t.ID, &t.UserID, &t.Ticker, &t.Side, &t.Price, &t.Volume, &t.Timestamp, &t.Status); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}
	return trades, nil
}
