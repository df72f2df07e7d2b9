// Package validator turns raw submission payloads into typed trade
// submissions. It is a pure function of its input: no I/O, no state.
package validator

import (
	"fmt"
	"math"

	"github.com/iamsli/trading-service/internal/domain/models"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingField   Kind = "missing_field"
	KindInvalidNumeric Kind = "invalid_numeric"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidType    Kind = "invalid_type"
)

// ValidationError reports the first check that failed for a submission
// payload, naming the offending field so clients can correct the request.
type ValidationError struct {
	Field string
	Kind  Kind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case KindInvalidNumeric:
		return fmt.Sprintf("%s must be a positive number", e.Field)
	case KindInvalidEnum:
		return fmt.Sprintf(`invalid %s: must be "buy" or "sell"`, e.Field)
	default:
		return fmt.Sprintf("%s has an invalid type", e.Field)
	}
}

// requiredFields in check order. Missing-field errors report the first
// absent field in this order.
var requiredFields = []string{"user_id", "ticker", "side", "price", "volume"}

// Validate checks a raw payload (decoded JSON object) and returns a typed
// submission or a *ValidationError describing the first failing check.
//
// Check order is part of the contract: required fields, then numeric
// fields (price, volume), then side. The first failure wins; errors are
// never aggregated.
func Validate(payload map[string]any) (*models.TradeSubmission, error) {
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			return nil, &ValidationError{Field: field, Kind: KindMissingField}
		}
	}

	price, ok := asNumber(payload["price"])
	if !ok || price <= 0 {
		return nil, &ValidationError{Field: "price", Kind: KindInvalidNumeric}
	}
	rawVolume, ok := asNumber(payload["volume"])
	if !ok || rawVolume <= 0 {
		return nil, &ValidationError{Field: "volume", Kind: KindInvalidNumeric}
	}
	// Volume is a quantity; fractional values are not valid even though
	// JSON carries them as floats.
	if rawVolume != math.Trunc(rawVolume) {
		return nil, &ValidationError{Field: "volume", Kind: KindInvalidNumeric}
	}

	side, ok := payload["side"].(string)
	if !ok || (side != string(models.SideBuy) && side != string(models.SideSell)) {
		return nil, &ValidationError{Field: "side", Kind: KindInvalidEnum}
	}

	userID, ok := payload["user_id"].(string)
	if !ok {
		return nil, &ValidationError{Field: "user_id", Kind: KindInvalidType}
	}
	ticker, ok := payload["ticker"].(string)
	if !ok {
		return nil, &ValidationError{Field: "ticker", Kind: KindInvalidType}
	}

	return &models.TradeSubmission{
		UserID: userID,
		Ticker: ticker,
		Side:   models.Side(side),
		Price:  price,
		Volume: int64(rawVolume),
	}, nil
}

// asNumber accepts the numeric shapes a decoded JSON payload can carry.
// encoding/json produces float64; int/int64 cover callers constructing
// payloads in Go.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
