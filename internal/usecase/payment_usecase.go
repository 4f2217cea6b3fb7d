package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/gateway"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type PaymentUseCase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	gateway     gateway.PaymentGateway
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewPaymentUseCase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	paymentGateway gateway.PaymentGateway,
	publisher EventPublisher,
	logger *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     paymentGateway,
		publisher:   publisher,
		logger:      logger,
	}
}

// VerifyPayment resolves a gateway reference to its real status and applies
// the paid side effects exactly once. The buyer is redirected to a hosted
// payment page, so this is called asynchronously, possibly many times for
// the same reference; an already-paid order short-circuits without touching
// the gateway or stock again.
func (uc *PaymentUseCase) VerifyPayment(ctx context.Context, reference string) (*entities.Order, error) {
	if reference == "" {
		return nil, ErrMissingReference
	}

	order, err := uc.orderRepo.GetByPaymentReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for reference: %w", err)
	}

	if order.Payment.Status == entities.PaymentStatusPaid {
		uc.logger.Info("Payment already verified, skipping", "reference", reference)
		return order, nil
	}

	result, err := uc.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		uc.logger.Error("Gateway verification call failed", "reference", reference, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentVerify, err)
	}

	if result.Status != gateway.StatusSuccess {
		if err := uc.orderRepo.MarkFailed(ctx, reference); err != nil &&
			!errors.Is(err, repositories.ErrAlreadyPaid) {
			return nil, fmt.Errorf("failed to record payment failure: %w", err)
		}
		return nil, fmt.Errorf("%w: gateway reported status %q", ErrPaymentDeclined, result.Status)
	}

	// Note: the paid amount reported by the gateway is not compared against
	// the order total; the gateway is trusted as the source of truth.

	paidAt := time.Now()
	err = uc.orderRepo.MarkPaid(ctx, reference, paidAt)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyPaid) {
			// A concurrent verification won the compare-and-set. Stock has
			// already been decremented once; do not do it again.
			uc.logger.Info("Concurrent verification already marked order paid", "reference", reference)
			return uc.orderRepo.GetByPaymentReference(ctx, reference)
		}
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}

	uc.applyStockDecrements(ctx, order)

	order.Payment.Status = entities.PaymentStatusPaid
	order.Payment.PaidAt = &paidAt
	order.Status = entities.OrderStatusPaid
	order.UpdatedAt = paidAt

	if uc.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishPaymentReceived(pubCtx, order); err != nil {
				uc.logger.Warn("Failed to publish payment.received event", "order_id", order.ID, "error", err)
			}
		}()
	}

	uc.logger.Info("Payment verified", "reference", reference, "order_id", order.ID)
	return order, nil
}

// applyStockDecrements is best-effort: a product deleted after checkout is
// skipped so the confirmation still goes through, and the skip is logged.
func (uc *PaymentUseCase) applyStockDecrements(ctx context.Context, order *entities.Order) {
	for _, item := range order.Items {
		err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Qty)
		if err == nil {
			continue
		}

		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			uc.logger.Warn("Product missing during stock decrement, skipping",
				"order_id", order.ID,
				"product_id", item.ProductID)
		case errors.Is(err, repositories.ErrInsufficientStock):
			uc.logger.Warn("Stock too low to decrement, skipping",
				"order_id", order.ID,
				"product_id", item.ProductID,
				"qty", item.Qty)
		default:
			uc.logger.Error("Failed to decrement stock",
				"order_id", order.ID,
				"product_id", item.ProductID,
				"error", err)
		}
	}
}

var (
	ErrMissingReference = errors.New("payment reference is required")
	ErrPaymentVerify    = errors.New("payment verification failed")
	ErrPaymentDeclined  = errors.New("payment was not successful")
)
