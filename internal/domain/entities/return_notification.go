package entities

// ReturnNotification is what the payer's browser brings back from the hosted
// checkout page (2Checkout "passback" parameters) plus the correlation token
// the shop attached to the return.
type ReturnNotification struct {
	OrderID         int64
	Token           string
	OrderNumber     string // 2Checkout sale number
	Total           string
	Key             string // upper-case MD5 computed by 2Checkout
	MerchantOrderID string
}
