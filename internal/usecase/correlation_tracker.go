package usecase

import (
	"crypto/subtle"
	"fmt"
	"time"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"
)

// ICorrelationTracker issues and checks the per-order correlation token.
type ICorrelationTracker interface {
	BeginFlow(orderID int64) (entities.OrderCorrelationRecord, error)
	Validate(record entities.OrderCorrelationRecord, token string) error
	Consume(record entities.OrderCorrelationRecord, payerReference string) entities.OrderCorrelationRecord
}

// CorrelationTracker holds no per-order state; the record it returns must be
// persisted by the caller before the payer is redirected.
type CorrelationTracker struct {
	tokens interfaces.ITokenGenerator
	now    func() time.Time
}

var _ ICorrelationTracker = (*CorrelationTracker)(nil)

func NewCorrelationTracker(tokens interfaces.ITokenGenerator) *CorrelationTracker {
	return &CorrelationTracker{tokens: tokens, now: time.Now}
}

func (t *CorrelationTracker) BeginFlow(orderID int64) (entities.OrderCorrelationRecord, error) {
	token, err := t.tokens.Generate()
	if err != nil {
		return entities.OrderCorrelationRecord{}, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	if token == "" {
		return entities.OrderCorrelationRecord{}, fmt.Errorf("%w: empty token", ErrTokenGeneration)
	}
	return entities.OrderCorrelationRecord{
		OrderID:   orderID,
		FlowKind:  entities.FlowKind2CO,
		Token:     token,
		IsOffsite: true,
		CreatedAt: t.now().UTC(),
	}, nil
}

// Validate accepts token only if it is the current token of the stored record
// and no return has been applied with it yet.
func (t *CorrelationTracker) Validate(record entities.OrderCorrelationRecord, token string) error {
	if !record.Exists() {
		return ErrCorrelationNotFound
	}
	if record.FlowKind != entities.FlowKind2CO || !record.IsOffsite {
		return fmt.Errorf("%w: unexpected flow %q", ErrInvalidToken, record.FlowKind)
	}
	if token == "" || subtle.ConstantTimeCompare([]byte(record.Token), []byte(token)) != 1 {
		return ErrInvalidToken
	}
	if record.Consumed() {
		return ErrReplayedCallback
	}
	return nil
}

// Consume marks the record as applied with the provider's payer/sale reference.
func (t *CorrelationTracker) Consume(record entities.OrderCorrelationRecord, payerReference string) entities.OrderCorrelationRecord {
	ref := payerReference
	record.PayerReference = &ref
	return record
}
