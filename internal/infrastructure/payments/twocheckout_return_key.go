package payments

import (
	"crypto/subtle"
	"strings"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"

	"gitee.com/golang-module/dongle"
)

// demoOrderNumber replaces the sale number in the return key of demo sales.
const demoOrderNumber = "1"

// TwoCheckoutReturnKeyVerifier validates the "key" parameter of a 2Checkout
// return: UPPER(MD5(secret word + sid + order number + total)).
type TwoCheckoutReturnKeyVerifier struct{}

var _ interfaces.IReturnKeyVerifier = (*TwoCheckoutReturnKeyVerifier)(nil)

func NewTwoCheckoutReturnKeyVerifier() *TwoCheckoutReturnKeyVerifier {
	return &TwoCheckoutReturnKeyVerifier{}
}

func (v *TwoCheckoutReturnKeyVerifier) Verify(cfg entities.GatewayConfiguration, n entities.ReturnNotification) bool {
	if cfg.SecretWord == "" || n.Key == "" {
		return false
	}
	expected := ReturnKey(cfg, n.OrderNumber, n.Total)
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToUpper(n.Key))) == 1
}

// ReturnKey computes the key 2Checkout is expected to send for a sale.
func ReturnKey(cfg entities.GatewayConfiguration, orderNumber, total string) string {
	if cfg.DemoMode {
		orderNumber = demoOrderNumber
	}
	sum := dongle.Encrypt.FromString(cfg.SecretWord + cfg.MerchantCode + orderNumber + total).ByMd5()
	if sum.Error != nil {
		return ""
	}
	return strings.ToUpper(sum.ToHexString())
}
