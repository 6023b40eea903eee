package repository

import (
	"context"
	"sync"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"
)

// CorrelationMemoryRepository keeps records in process memory. Meant for local
// runs and tests; records are lost on restart.
type CorrelationMemoryRepository struct {
	mu   sync.RWMutex
	data map[int64]entities.OrderCorrelationRecord
}

var _ interfaces.ICorrelationRepository = (*CorrelationMemoryRepository)(nil)

func NewCorrelationMemoryRepository() *CorrelationMemoryRepository {
	return &CorrelationMemoryRepository{data: make(map[int64]entities.OrderCorrelationRecord)}
}

func (r *CorrelationMemoryRepository) Save(_ context.Context, orderID int64, record entities.OrderCorrelationRecord) error {
	record.OrderID = orderID
	if record.PayerReference != nil {
		ref := *record.PayerReference
		record.PayerReference = &ref
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[orderID] = record
	return nil
}

func (r *CorrelationMemoryRepository) GetByOrderID(_ context.Context, orderID int64) (entities.OrderCorrelationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data[orderID], nil
}
