package service

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/iamsli/trading-service/internal/domain/models"
	"github.com/iamsli/trading-service/internal/storage"
)

// ErrNoTrades reports that a user has no trades at all. A legitimate
// empty result, distinct from store failures.
var ErrNoTrades = errors.New("no trades found for user")

// StatsService computes per-ticker statistics for a user's trades.
type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (map[string]models.TickerStats, error)
}

type statsService struct {
	repo  storage.TradesRepository
	group singleflight.Group
}

func NewStatsService(repo storage.TradesRepository) StatsService {
	return &statsService{repo: repo}
}

// GetUserStats snapshots the user's trades and aggregates them in memory.
// Concurrent requests for the same user collapse into one store read.
// The aggregation runs over the snapshot without holding any store
// resources. Callers must treat the returned map as read-only; it may be
// shared between collapsed requests.
func (s *statsService) GetUserStats(ctx context.Context, userID string) (map[string]models.TickerStats, error) {
	v, err, _ := s.group.Do(userID, func() (any, error) {
		trades, err := s.repo.GetTradesByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(trades) == 0 {
			return nil, ErrNoTrades
		}
		return ComputeTickerStats(trades), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]models.TickerStats), nil
}
