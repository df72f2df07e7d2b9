package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamsli/trading-service/internal/domain/dto"
	"github.com/iamsli/trading-service/internal/service"
)

// Handler provides HTTP handlers for trade submission and analytics.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and bodies
//   - Invoke the service layer
//   - Translate service results and outcomes into response DTOs
//   - Return structured JSON with appropriate HTTP status codes
type Handler struct {
	submit  service.SubmissionService
	stats   service.StatsService
	history service.HistoryService
}

// NewHandler constructs a Handler from its service dependencies.
func NewHandler(submit service.SubmissionService, stats service.StatsService, history service.HistoryService) *Handler {
	return &Handler{submit: submit, stats: stats, history: history}
}

// SubmitTrade handles POST /api/v1/trades requests.
//
// SubmitTrade godoc
// @Summary      Submit a trade order
// @Description  Validates and records a trade order; the trade always settles to a terminal status
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      map[string]interface{}  true  "Trade submission: user_id, ticker, side, price, volume"
// @Success      201    {object}  dto.SubmitTradeResponse  "Created"
// @Failure      400    {object}  dto.ErrorResponse        "Validation failure"
// @Failure      500    {object}  dto.ErrorResponse        "Persistence or confirmation failure"
// @Router       /api/v1/trades [post]
func (h *Handler) SubmitTrade(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid JSON body", err))
		return
	}

	res := h.submit.Submit(c.Request.Context(), payload)
	switch res.Outcome {
	case service.OutcomeConfirmed:
		c.JSON(http.StatusCreated, dto.SubmitTradeResponse{
			Message: "trade submitted successfully",
			TradeID: res.TradeID,
		})
	case service.OutcomeRejected:
		// Validation errors name the offending field to aid correction.
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(res.Err.Error(), nil))
	case service.OutcomeMarkedFailed:
		// The row exists but is terminally failed; say so, without the
		// underlying store error.
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			"trade recorded but marked failed", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			"failed to submit trade", nil))
	}
}

// GetStats handles GET /api/v1/stats requests.
//
// GetStats godoc
// @Summary      Per-ticker statistics for a user
// @Description  Returns highest/lowest price, total volume, total value and VWAP per ticker
// @Tags         stats
// @Produce      json
// @Param        user_id  query     string  true  "User identifier" example(alice)
// @Success      200      {object}  map[string]dto.TickerStatsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse                   "Missing user_id"
// @Failure      404      {object}  dto.ErrorResponse                   "No trades for user"
// @Failure      500      {object}  dto.ErrorResponse                   "Internal error"
// @Router       /api/v1/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required", nil))
		return
	}

	stats, err := h.stats.GetUserStats(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNoTrades) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no trades found for the specified user", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stats", nil))
		return
	}

	resp := make(map[string]dto.TickerStatsResponse, len(stats))
	for ticker, s := range stats {
		resp[ticker] = dto.TickerStatsResponse{
			HighestPrice: s.HighestPrice,
			LowestPrice:  s.LowestPrice,
			TotalVolume:  s.TotalVolume,
			TotalValue:   s.TotalValue,
			VWAP:         s.VWAP,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetHistory handles GET /api/v1/trades requests.
//
// GetHistory godoc
// @Summary      Historical trades for a user
// @Description  Returns the user's trades in insertion order
// @Tags         trades
// @Produce      json
// @Param        user_id  query     string  true  "User identifier" example(alice)
// @Success      200      {object}  dto.HistoryResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "Missing user_id"
// @Failure      404      {object}  dto.ErrorResponse    "No trades for user"
// @Failure      500      {object}  dto.ErrorResponse    "Internal error"
// @Router       /api/v1/trades [get]
func (h *Handler) GetHistory(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required", nil))
		return
	}

	trades, err := h.history.GetUserTrades(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNoTrades) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no historical trades found for the specified user", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch historical trades", nil))
		return
	}

	resp := dto.HistoryResponse{HistoricalTrades: make([]dto.HistoricalTradeResponse, 0, len(trades))}
	for _, t := range trades {
		resp.HistoricalTrades = append(resp.HistoricalTrades, dto.HistoricalTradeResponse{
			Timestamp: t.Timestamp,
			Ticker:    t.Ticker,
			Side:      string(t.Side),
			Price:     t.Price,
			Volume:    t.Volume,
			Status:    string(t.Status),
		})
	}

	c.JSON(http.StatusOK, resp)
}
