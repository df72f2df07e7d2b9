package service

import (
	"context"

	"github.com/iamsli/trading-service/internal/domain/models"
	"github.com/iamsli/trading-service/internal/storage"
)

// HistoryService lists a user's raw trade history.
type HistoryService interface {
	GetUserTrades(ctx context.Context, userID string) ([]models.Trade, error)
}

type historyService struct {
	repo storage.TradesRepository
}

func NewHistoryService(repo storage.TradesRepository) HistoryService {
	return &historyService{repo: repo}
}

// GetUserTrades returns the user's trades in store order, or ErrNoTrades
// when the user has none.
func (s *historyService) GetUserTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	trades, err := s.repo.GetTradesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, ErrNoTrades
	}
	return trades, nil
}
