package response

import (
	"time"

	"commerce_2checkout/internal/domain/entities"
)

// CorrelationResponse never carries the token itself.
type CorrelationResponse struct {
	OrderID        int64     `json:"order_id"`
	Flow           string    `json:"flow"`
	Offsite        bool      `json:"offsite"`
	Consumed       bool      `json:"consumed"`
	PayerReference string    `json:"payer_reference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReturnVerifiedResponse struct {
	Verified       bool   `json:"verified"`
	OrderID        int64  `json:"order_id"`
	PayerReference string `json:"payer_reference"`
}

func FromCorrelation(r entities.OrderCorrelationRecord) CorrelationResponse {
	res := CorrelationResponse{
		OrderID:   r.OrderID,
		Flow:      r.FlowKind,
		Offsite:   r.IsOffsite,
		Consumed:  r.Consumed(),
		CreatedAt: r.CreatedAt,
	}
	if r.PayerReference != nil {
		res.PayerReference = *r.PayerReference
	}
	return res
}

func FromVerifiedReturn(r entities.OrderCorrelationRecord) ReturnVerifiedResponse {
	res := ReturnVerifiedResponse{Verified: true, OrderID: r.OrderID}
	if r.PayerReference != nil {
		res.PayerReference = *r.PayerReference
	}
	return res
}
