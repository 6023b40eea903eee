package interfaces

import "commerce_2checkout/internal/domain/entities"

// IReturnKeyVerifier checks the signature 2Checkout attaches to a return
// against the merchant secret word.
type IReturnKeyVerifier interface {
	Verify(cfg entities.GatewayConfiguration, n entities.ReturnNotification) bool
}
