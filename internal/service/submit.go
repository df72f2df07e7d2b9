package service

import (
	"context"
	"fmt"

	"github.com/iamsli/trading-service/internal/domain/models"
	"github.com/iamsli/trading-service/internal/logger"
	"github.com/iamsli/trading-service/internal/storage"
	"github.com/iamsli/trading-service/internal/validator"
)

// SubmitOutcome enumerates every way a submission can end. Each request
// terminates in exactly one of these states.
type SubmitOutcome int

const (
	// OutcomeConfirmed: the trade was persisted and its status settled
	// to successful.
	OutcomeConfirmed SubmitOutcome = iota
	// OutcomeRejected: validation failed; nothing was persisted.
	OutcomeRejected
	// OutcomeMarkedFailed: the trade row exists but its status settled
	// to failed. The attempt is preserved for audit.
	OutcomeMarkedFailed
	// OutcomeInternalError: the initial insert (or an unexpected fault
	// before it) failed; no record exists.
	OutcomeInternalError
)

func (o SubmitOutcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeMarkedFailed:
		return "marked_failed"
	default:
		return "internal_error"
	}
}

// SubmitResult is the tagged outcome of one submission. TradeID is set
// whenever a row exists (Confirmed and MarkedFailed); Err carries the
// validation or store error for non-confirmed outcomes.
type SubmitResult struct {
	Outcome SubmitOutcome
	TradeID int64
	Err     error
}

// SubmissionService runs the trade submission workflow.
type SubmissionService interface {
	Submit(ctx context.Context, payload map[string]any) SubmitResult
}

type submissionService struct {
	repo storage.TradesRepository
}

func NewSubmissionService(repo storage.TradesRepository) SubmissionService {
	return &submissionService{repo: repo}
}

// Submit drives a payload through validate → persist(pending) →
// confirm-or-fail. Once the insert succeeds the trade always ends in a
// terminal status: any later error marks the row failed rather than
// losing the attempt. No error or panic escapes to the caller; everything
// maps to a SubmitResult.
func (s *submissionService) Submit(ctx context.Context, payload map[string]any) (res SubmitResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error().Str("panic", fmt.Sprintf("%v", r)).Msg("submission workflow panic")
			res = SubmitResult{Outcome: OutcomeInternalError, Err: fmt.Errorf("submission workflow: %v", r)}
		}
	}()

	sub, err := validator.Validate(payload)
	if err != nil {
		return SubmitResult{Outcome: OutcomeRejected, Err: err}
	}

	id, err := s.repo.InsertTrade(ctx, *sub)
	if err != nil {
		// No row exists yet; nothing to mark.
		logger.L().Error().Err(err).Str("user_id", sub.UserID).Str("ticker", sub.Ticker).Msg("trade insert failed")
		return SubmitResult{Outcome: OutcomeInternalError, Err: err}
	}

	// Post-create confirmation: verify the row is readable before
	// settling its status. Any error here marks the trade failed
	// instead of leaving it pending.
	if _, err := s.repo.GetTradeByID(ctx, id); err != nil {
		return s.markFailed(ctx, id, err)
	}
	if err := s.repo.UpdateTradeStatus(ctx, id, models.StatusSuccessful); err != nil {
		return s.markFailed(ctx, id, err)
	}

	logger.L().Info().Int64("trade_id", id).Str("user_id", sub.UserID).Str("ticker", sub.Ticker).Msg("trade confirmed")
	return SubmitResult{Outcome: OutcomeConfirmed, TradeID: id}
}

// markFailed settles a persisted trade to the failed terminal status.
// The cause is logged and reported; a failure of the marking update
// itself is logged but cannot change the outcome.
func (s *submissionService) markFailed(ctx context.Context, id int64, cause error) SubmitResult {
	logger.L().Error().Err(cause).Int64("trade_id", id).Msg("trade confirmation failed")
	if err := s.repo.UpdateTradeStatus(ctx, id, models.StatusFailed); err != nil {
		logger.L().Error().Err(err).Int64("trade_id", id).Msg("could not mark trade failed")
	}
	return SubmitResult{Outcome: OutcomeMarkedFailed, TradeID: id, Err: cause}
}
