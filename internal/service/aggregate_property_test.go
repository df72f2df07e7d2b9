package service

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/iamsli/trading-service/internal/domain/models"
)

func genTrades(t *rapid.T) []models.Trade {
	tickers := []string{"AAA", "BBB", "CCC"}
	n := rapid.IntRange(1, 50).Draw(t, "n")
	trades := make([]models.Trade, 0, n)
	for i := 0; i < n; i++ {
		trades = append(trades, models.Trade{
			Ticker: rapid.SampledFrom(tickers).Draw(t, "ticker"),
			Price:  float64(rapid.IntRange(1, 100000).Draw(t, "priceCents")) / 100,
			Volume: rapid.Int64Range(1, 10000).Draw(t, "volume"),
		})
	}
	return trades
}

// Shuffling the input never changes the aggregate.
func TestProperty_AggregationOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trades := genTrades(t)
		perm := rapid.Permutation(trades).Draw(t, "perm")

		a := ComputeTickerStats(trades)
		b := ComputeTickerStats(perm)

		if len(a) != len(b) {
			t.Fatalf("ticker sets differ: %d vs %d", len(a), len(b))
		}
		for ticker, sa := range a {
			sb, ok := b[ticker]
			if !ok {
				t.Fatalf("ticker %s missing after shuffle", ticker)
			}
			if sa.HighestPrice != sb.HighestPrice || sa.LowestPrice != sb.LowestPrice || sa.TotalVolume != sb.TotalVolume {
				t.Fatalf("ticker %s differs: %+v vs %+v", ticker, sa, sb)
			}
			if math.Abs(sa.TotalValue-sb.TotalValue) > 1e-6 || math.Abs(sa.VWAP-sb.VWAP) > 1e-9 {
				t.Fatalf("ticker %s value/vwap differ: %+v vs %+v", ticker, sa, sb)
			}
		}
	})
}

// Each ticker's stats equal the stats of that ticker's trades alone.
func TestProperty_TickerIsolation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trades := genTrades(t)
		combined := ComputeTickerStats(trades)

		for ticker, want := range combined {
			var subset []models.Trade
			for _, tr := range trades {
				if tr.Ticker == ticker {
					subset = append(subset, tr)
				}
			}
			got := ComputeTickerStats(subset)[ticker]
			if got != want {
				t.Fatalf("ticker %s: isolated %+v vs combined %+v", ticker, got, want)
			}
		}
	})
}

// Structural invariants: lowest <= vwap <= highest, positive totals, and
// the ticker set matches the input.
func TestProperty_AggregationInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trades := genTrades(t)
		stats := ComputeTickerStats(trades)

		seen := map[string]bool{}
		for _, tr := range trades {
			seen[tr.Ticker] = true
		}
		if len(stats) != len(seen) {
			t.Fatalf("ticker set mismatch: %d vs %d", len(stats), len(seen))
		}

		for ticker, s := range stats {
			if s.LowestPrice > s.HighestPrice {
				t.Fatalf("%s: low %v > high %v", ticker, s.LowestPrice, s.HighestPrice)
			}
			if s.VWAP < s.LowestPrice-1e-9 || s.VWAP > s.HighestPrice+1e-9 {
				t.Fatalf("%s: vwap %v outside [%v, %v]", ticker, s.VWAP, s.LowestPrice, s.HighestPrice)
			}
			if s.TotalVolume <= 0 || s.TotalValue <= 0 {
				t.Fatalf("%s: non-positive totals %+v", ticker, s)
			}
		}
	})
}
