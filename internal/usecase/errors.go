package usecase

import "errors"

var (
	// ErrConfiguration means the gateway is missing its merchant code or secret
	// word. Not retryable; an operator has to fix the gateway settings.
	ErrConfiguration = errors.New("gateway configuration error")
	// ErrInvalidOrder means the order cannot be sent to 2Checkout as it is.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrPersistence means the correlation record could not be stored or loaded.
	// No redirect may be issued after this error.
	ErrPersistence = errors.New("correlation persistence error")

	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrCorrelationNotFound   = errors.New("correlation record not found")
	ErrInvalidToken          = errors.New("invalid correlation token")
	ErrReplayedCallback      = errors.New("correlation token already used")
	ErrInvalidSignature      = errors.New("invalid return signature")
	ErrTokenGeneration       = errors.New("token generation failed")
	ErrMerchantOrderMismatch = errors.New("merchant order id does not match")
)
