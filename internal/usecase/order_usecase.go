package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/gateway"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order) error
	PublishPaymentReceived(ctx context.Context, order *entities.Order) error
	Close()
}

type OrderItemRequest struct {
	ProductID string
	Qty       int
}

// CheckoutResult is what the storefront needs to redirect the buyer to the
// hosted payment page.
type CheckoutResult struct {
	Order            *entities.Order
	PaymentURL       string
	PaymentReference string
}

type OrderUseCase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	gateway     gateway.PaymentGateway
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewOrderUseCase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	paymentGateway gateway.PaymentGateway,
	publisher EventPublisher,
	logger *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     paymentGateway,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateOrder validates the cart against the catalog, initializes a gateway
// transaction and persists a pending order. Stock is NOT decremented here;
// that happens once payment is verified.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, customer entities.Customer, items []OrderItemRequest) (*CheckoutResult, error) {
	if customer.Name == "" || customer.Email == "" {
		return nil, ErrMissingCustomer
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	totalAmount := 0.0
	orderItems := make([]entities.OrderItem, 0, len(items))

	for i, item := range items {
		if item.Qty <= 0 {
			return nil, fmt.Errorf("%w: item %d has invalid quantity", ErrInvalidItem, i)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrProductNotFound) {
				return nil, fmt.Errorf("%w: %s", repositories.ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to load product: %w", err)
		}

		if product.StockQty < item.Qty {
			return nil, fmt.Errorf("%w for product: %s", ErrInsufficientStock, product.Name)
		}

		lineTotal := product.Price * float64(item.Qty)
		totalAmount += lineTotal

		orderItems = append(orderItems, entities.OrderItem{
			ProductID:     product.ID,
			NameSnapshot:  product.Name,
			PriceSnapshot: product.Price,
			Qty:           item.Qty,
			LineTotal:     lineTotal,
		})
	}

	// Gateway amounts are in the smallest currency unit.
	gatewayAmount := int64(math.Round(totalAmount * 100))

	tx, err := uc.gateway.InitializeTransaction(ctx, customer.Email, gatewayAmount, map[string]string{
		"customer_name": customer.Name,
	})
	if err != nil {
		uc.logger.Error("Payment initialization failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}

	now := time.Now()
	order := &entities.Order{
		Customer:    customer,
		Items:       orderItems,
		TotalAmount: totalAmount,
		Status:      entities.OrderStatusPending,
		Payment: entities.Payment{
			Provider:  entities.PaymentProviderPaystack,
			Reference: tx.Reference,
			Status:    entities.PaymentStatusPending,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if uc.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishOrderCreated(pubCtx, order); err != nil {
				uc.logger.Warn("Failed to publish order.created event", "order_id", order.ID, "error", err)
			}
		}()
	}

	return &CheckoutResult{
		Order:            order,
		PaymentURL:       tx.AuthorizationURL,
		PaymentReference: tx.Reference,
	}, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// GetOrderExpanded loads an order and fills each line with the current
// product's slug and images for admin display. A deleted product leaves the
// snapshot fields as the only record, which is exactly their purpose.
func (uc *OrderUseCase) GetOrderExpanded(ctx context.Context, orderID string) (*entities.Order, error) {
	order, err := uc.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		product, err := uc.productRepo.GetByID(ctx, order.Items[i].ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrProductNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to expand order item: %w", err)
		}
		order.Items[i].ProductSlug = product.Slug
		order.Items[i].ProductImages = product.Images
	}

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entities.Order, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus is the admin override used for fulfilment. Transitions
// are validated against the central transition table.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID, status string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order for update: %w", err)
	}

	next := entities.OrderStatus(status)
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = next
	return order, nil
}

var (
	ErrMissingCustomer   = errors.New("customer name and email are required")
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidItem       = errors.New("invalid item")
	ErrInvalidOrderID    = errors.New("invalid order ID")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentInit       = errors.New("payment initialization failed")
)
