package interfaces

import (
	"context"

	"commerce_2checkout/internal/domain/entities"
)

// ICorrelationRepository stores the correlation record of each order.
//
// Save overwrites any previous record for the order, so the most recently saved
// token is the only valid one. GetByOrderID returns the zero record when nothing
// is stored.

type ICorrelationRepository interface {
	Save(ctx context.Context, orderID int64, record entities.OrderCorrelationRecord) error
	GetByOrderID(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error)
}
