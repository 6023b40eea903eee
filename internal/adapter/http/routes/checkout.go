package routes

import (
	"commerce_2checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/redirect", checkoutHandler.StartCheckout)
		checkout.GET("/:order_id/correlation", checkoutHandler.GetCorrelation)
		checkout.POST("/:order_id/return", checkoutHandler.VerifyReturn)
	}
}
