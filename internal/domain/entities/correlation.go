package entities

import "time"

// FlowKind2CO identifies the 2Checkout offsite redirect flow on an order.
const FlowKind2CO = "2co"

// OrderCorrelationRecord is the state kept on an order between the redirect and
// the provider return.
//
// Lifecycle:
//   - created by BeginFlow with a fresh Token and no PayerReference
//   - replaced by a later BeginFlow for the same order (last token wins)
//   - consumed once a verified return sets PayerReference; the token is then spent
type OrderCorrelationRecord struct {
	OrderID        int64     `json:"order_id"`
	FlowKind       string    `json:"flow"`
	Token          string    `json:"payment_redirect_key"`
	PayerReference *string   `json:"payerid,omitempty"`
	IsOffsite      bool      `json:"offsite"`
	CreatedAt      time.Time `json:"created_at"`
}

// Exists reports whether the record was loaded from storage.
func (r OrderCorrelationRecord) Exists() bool {
	return r.Token != ""
}

// Consumed reports whether a provider return was already applied with this token.
func (r OrderCorrelationRecord) Consumed() bool {
	return r.PayerReference != nil
}
