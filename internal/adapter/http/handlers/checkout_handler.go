package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	request "commerce_2checkout/internal/adapter/http/dto/request"
	response "commerce_2checkout/internal/adapter/http/dto/response"
	"commerce_2checkout/internal/usecase"
	"commerce_2checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidOrderIDParam    = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
)

// CheckoutHandler exposes the 2Checkout offsite flow. It only describes the
// redirect; sending the payer there is left to the caller.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartCheckout godoc
// @Summary      Build a 2Checkout redirect
// @Description  Builds the purchase parameters for an order and stores a fresh correlation token. A later call for the same order replaces the token.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      request.CheckoutRedirectRequest  true  "Order snapshot and return urls"
// @Success      201      {object}  response.RedirectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /checkout/redirect [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	var payload request.CheckoutRedirectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.WarnContext(ctx, "[checkout][handler] invalid payload", "err", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	redirect, record, err := h.usecase.StartCheckout(ctx, payload.ToOrderSnapshot(), payload.ToExtraContext())
	if err != nil {
		logCheckoutError(c, "start failed", payload.Order.OrderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRedirect(redirect, record))
}

// GetCorrelation godoc
// @Summary      Get the correlation record of an order
// @Tags         checkout
// @Produce      json
// @Param        order_id  path      int  true  "Order id"
// @Success      200       {object}  response.CorrelationResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /checkout/{order_id}/correlation [get]
func (h *CheckoutHandler) GetCorrelation(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		c.JSON(errInvalidOrderIDParam.HTTPStatus, errInvalidOrderIDParam.ToHTTPError())
		return
	}

	record, err := h.usecase.GetCorrelation(c.Request.Context(), orderID)
	if err != nil {
		logCheckoutError(c, "get correlation failed", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCorrelation(record))
}

// VerifyReturn godoc
// @Summary      Verify a 2Checkout return
// @Description  Accepts the passback fields once per correlation token. The caller applies the payment only on 200.
// @Tags         checkout
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        order_id           path      int     true   "Order id"
// @Param        token              formData  string  true   "Correlation token"
// @Param        order_number       formData  string  true   "2Checkout sale number"
// @Param        total              formData  string  true   "Sale total"
// @Param        key                formData  string  true   "2Checkout return key"
// @Param        merchant_order_id  formData  string  false  "Order id echoed by 2Checkout"
// @Success      200                {object}  response.ReturnVerifiedResponse
// @Failure      400                {object}  pkg.HTTPError
// @Failure      401                {object}  pkg.HTTPError
// @Failure      404                {object}  pkg.HTTPError
// @Failure      409                {object}  pkg.HTTPError
// @Router       /checkout/{order_id}/return [post]
func (h *CheckoutHandler) VerifyReturn(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		c.JSON(errInvalidOrderIDParam.HTTPStatus, errInvalidOrderIDParam.ToHTTPError())
		return
	}

	var payload request.ReturnRequest
	if err := c.ShouldBind(&payload); err != nil {
		slog.WarnContext(c.Request.Context(), "[checkout][handler] invalid return payload", "order_id", orderID, "err", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.VerifyReturn(c.Request.Context(), payload.ToReturnNotification(orderID))
	if err != nil {
		logCheckoutError(c, "verify return failed", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerifiedReturn(record))
}

func parseOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("order_id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func logCheckoutError(c *gin.Context, msg string, orderID int64, err error) {
	level := slog.LevelError
	if usecase.IsClientError(err) {
		level = slog.LevelWarn
	}
	slog.Log(c.Request.Context(), level, "[checkout][handler] "+msg, "order_id", orderID, "err", err)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainError("INVALID_ORDER", "Order cannot be sent to 2Checkout", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrMerchantOrderMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCorrelationNotFound):
		return pkg.NewDomainErrorSimple("CORRELATION_NOT_FOUND", "No checkout in progress for this order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Correlation token does not match", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Return key does not match", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrReplayedCallback):
		return pkg.NewDomainErrorSimple("RETURN_ALREADY_PROCESSED", "Return was already processed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
