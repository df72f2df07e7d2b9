package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamsli/trading-service/internal/domain/dto"
	"github.com/iamsli/trading-service/internal/domain/models"
	"github.com/iamsli/trading-service/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stats := &mockStatsService{stats: map[string]models.TickerStats{
		"AAPL": {HighestPrice: 20, LowestPrice: 10, TotalVolume: 4, TotalValue: 60, VWAP: 15},
	}}
	h := NewHandler(&mockSubmitService{}, stats, &mockHistoryService{})
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?user_id=alice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out map[string]dto.TickerStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out["AAPL"].VWAP != 15 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_SubmitRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	submit := &mockSubmitService{res: service.SubmitResult{Outcome: service.OutcomeConfirmed, TradeID: 1}}
	h := NewHandler(submit, &mockStatsService{}, &mockHistoryService{})
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades",
		strings.NewReader(`{"user_id":"alice","ticker":"AAPL","side":"buy","price":10,"volume":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}
