package service

import "github.com/iamsli/trading-service/internal/domain/models"

// ComputeTickerStats aggregates one user's trades into per-ticker
// statistics in a single pass.
//
// A ticker's accumulator is seeded from its first trade, so a
// single-trade ticker reports highest == lowest == that trade's price.
// The result is order-insensitive; the input may come from the store in
// any order. An empty input yields an empty map; callers decide whether
// that is a not-found condition.
func ComputeTickerStats(trades []models.Trade) map[string]models.TickerStats {
	stats := make(map[string]models.TickerStats, len(trades))

	for _, t := range trades {
		value := t.Price * float64(t.Volume)

		s, ok := stats[t.Ticker]
		if !ok {
			stats[t.Ticker] = models.TickerStats{
				HighestPrice: t.Price,
				LowestPrice:  t.Price,
				TotalVolume:  t.Volume,
				TotalValue:   value,
			}
			continue
		}

		if t.Price > s.HighestPrice {
			s.HighestPrice = t.Price
		}
		if t.Price < s.LowestPrice {
			s.LowestPrice = t.Price
		}
		s.TotalVolume += t.Volume
		s.TotalValue += value
		stats[t.Ticker] = s
	}

	for ticker, s := range stats {
		// Persisted volumes are always positive; the guard covers the
		// degenerate empty-accumulator case.
		if s.TotalVolume != 0 {
			s.VWAP = s.TotalValue / float64(s.TotalVolume)
		}
		stats[ticker] = s
	}

	return stats
}
