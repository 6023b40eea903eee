package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("commerce_2checkout/internal/usecase")

// ICheckoutUseCase is the offsite checkout flow of one 2Checkout gateway.
//
//   - StartCheckout: build the redirect and store the correlation record, atomically
//   - GetCorrelation: read the stored record of an order
//   - VerifyReturn: accept a provider return once, for the current token only
type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, order entities.OrderSnapshot, extra entities.ExtraContext) (entities.RedirectRequest, entities.OrderCorrelationRecord, error)
	GetCorrelation(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error)
	VerifyReturn(ctx context.Context, n entities.ReturnNotification) (entities.OrderCorrelationRecord, error)
}

type CheckoutUseCase struct {
	cfg      entities.GatewayConfiguration
	builder  IRequestBuilder
	tracker  ICorrelationTracker
	repo     interfaces.ICorrelationRepository
	verifier interfaces.IReturnKeyVerifier
	locks    [orderLockStripes]sync.Mutex
}

const orderLockStripes = 64

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	cfg entities.GatewayConfiguration,
	builder IRequestBuilder,
	tracker ICorrelationTracker,
	repo interfaces.ICorrelationRepository,
	verifier interfaces.IReturnKeyVerifier,
) *CheckoutUseCase {
	return &CheckoutUseCase{cfg: cfg, builder: builder, tracker: tracker, repo: repo, verifier: verifier}
}

func (u *CheckoutUseCase) StartCheckout(ctx context.Context, order entities.OrderSnapshot, extra entities.ExtraContext) (_ entities.RedirectRequest, _ entities.OrderCorrelationRecord, err error) {
	ctx, span := startSpan(ctx, "CheckoutUseCase.StartCheckout", order.OrderID)
	defer func() { endSpan(span, err) }()

	slog.InfoContext(ctx, "[checkout][usecase] start", "order_id", order.OrderID, "line_items", len(order.LineItems))
	if order.OrderID <= 0 {
		return entities.RedirectRequest{}, entities.OrderCorrelationRecord{}, ErrInvalidOrderID
	}
	if u.repo == nil {
		slog.ErrorContext(ctx, "[checkout][usecase] correlation repository not configured", "order_id", order.OrderID)
		return entities.RedirectRequest{}, entities.OrderCorrelationRecord{}, fmt.Errorf("%w: repository not configured", ErrPersistence)
	}

	defer u.lockOrder(order.OrderID).Unlock()

	req, err := u.builder.Build(order, u.cfg, extra)
	if err != nil {
		slog.WarnContext(ctx, "[checkout][usecase] build failed", "order_id", order.OrderID, "err", err)
		return entities.RedirectRequest{}, entities.OrderCorrelationRecord{}, err
	}
	if u.cfg.Logging == entities.LoggingFull {
		slog.InfoContext(ctx, "[checkout][usecase] redirect built", "order_id", order.OrderID, "target_url", req.TargetURL, "parameters", req.Parameters.Encode())
	}

	record, err := u.tracker.BeginFlow(order.OrderID)
	if err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] begin flow failed", "order_id", order.OrderID, "err", err)
		return entities.RedirectRequest{}, entities.OrderCorrelationRecord{}, err
	}

	if err := u.repo.Save(ctx, order.OrderID, record); err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] correlation save failed", "order_id", order.OrderID, "err", err)
		return entities.RedirectRequest{}, entities.OrderCorrelationRecord{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	slog.InfoContext(ctx, "[checkout][usecase] start success", "order_id", order.OrderID, "target_url", req.TargetURL, "flow", record.FlowKind)
	return req, record, nil
}

func (u *CheckoutUseCase) GetCorrelation(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error) {
	if orderID <= 0 {
		return entities.OrderCorrelationRecord{}, ErrInvalidOrderID
	}
	record, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.OrderCorrelationRecord{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !record.Exists() {
		return entities.OrderCorrelationRecord{}, ErrCorrelationNotFound
	}
	return record, nil
}

// VerifyReturn checks a provider return and spends the token. The caller may
// apply the payment state transition only when this returns no error.
func (u *CheckoutUseCase) VerifyReturn(ctx context.Context, n entities.ReturnNotification) (_ entities.OrderCorrelationRecord, err error) {
	ctx, span := startSpan(ctx, "CheckoutUseCase.VerifyReturn", n.OrderID)
	defer func() { endSpan(span, err) }()

	slog.InfoContext(ctx, "[checkout][usecase] verify return start", "order_id", n.OrderID, "order_number", n.OrderNumber)
	if n.OrderID <= 0 {
		return entities.OrderCorrelationRecord{}, ErrInvalidOrderID
	}
	if u.cfg.Logging == entities.LoggingFull {
		slog.InfoContext(ctx, "[checkout][usecase] return data", "order_id", n.OrderID, "merchant_order_id", n.MerchantOrderID, "total", n.Total)
	}
	if err := validateGatewayConfiguration(u.cfg); err != nil {
		return entities.OrderCorrelationRecord{}, err
	}
	if mo := strings.TrimSpace(n.MerchantOrderID); mo != "" && mo != strconv.FormatInt(n.OrderID, 10) {
		slog.WarnContext(ctx, "[checkout][usecase] merchant order mismatch", "order_id", n.OrderID, "merchant_order_id", mo)
		return entities.OrderCorrelationRecord{}, ErrMerchantOrderMismatch
	}

	defer u.lockOrder(n.OrderID).Unlock()

	record, err := u.repo.GetByOrderID(ctx, n.OrderID)
	if err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] correlation load failed", "order_id", n.OrderID, "err", err)
		return entities.OrderCorrelationRecord{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := u.tracker.Validate(record, n.Token); err != nil {
		slog.WarnContext(ctx, "[checkout][usecase] token rejected", "order_id", n.OrderID, "err", err)
		return entities.OrderCorrelationRecord{}, err
	}
	if u.verifier == nil || !u.verifier.Verify(u.cfg, n) {
		slog.WarnContext(ctx, "[checkout][usecase] return key rejected", "order_id", n.OrderID)
		return entities.OrderCorrelationRecord{}, ErrInvalidSignature
	}

	consumed := u.tracker.Consume(record, n.OrderNumber)
	if err := u.repo.Save(ctx, n.OrderID, consumed); err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] correlation consume failed", "order_id", n.OrderID, "err", err)
		return entities.OrderCorrelationRecord{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	slog.InfoContext(ctx, "[checkout][usecase] verify return success", "order_id", n.OrderID, "order_number", n.OrderNumber)
	return consumed, nil
}

// lockOrder serialises checkout starts and returns of the same order inside this
// process, so a token cannot be validated while it is being replaced or spent.
func (u *CheckoutUseCase) lockOrder(orderID int64) *sync.Mutex {
	idx := orderID % orderLockStripes
	if idx < 0 {
		idx = -idx
	}
	mutex := &u.locks[idx]
	mutex.Lock()
	return mutex
}

func startSpan(ctx context.Context, name string, orderID int64) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.Int64("order.id", orderID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// IsClientError reports whether err comes from the caller's input rather than
// from configuration or storage.
func IsClientError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidOrder), errors.Is(err, ErrInvalidOrderID),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrReplayedCallback),
		errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrMerchantOrderMismatch),
		errors.Is(err, ErrCorrelationNotFound):
		return true
	}
	return false
}
