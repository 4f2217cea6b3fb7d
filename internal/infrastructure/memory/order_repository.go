package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
)

// OrderRepositoryMemory is a map-backed OrderRepository used by workflow
// tests. The mutex makes MarkPaid an actual compare-and-set, matching the
// Mongo implementation's concurrency semantics.
type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Create(ctx context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if _, exists := r.orders[order.ID]; exists {
		return repositories.ErrOrderAlreadyExists
	}

	for _, existing := range r.orders {
		if existing.Payment.Reference != "" && existing.Payment.Reference == order.Payment.Reference {
			return repositories.ErrOrderAlreadyExists
		}
	}

	orderCopy := *order
	r.orders[order.ID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[orderID]
	if !exists {
		return nil, repositories.ErrOrderNotFound
	}

	orderCopy := *order
	return &orderCopy, nil
}

func (r *OrderRepositoryMemory) GetByPaymentReference(ctx context.Context, reference string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order := r.findByReference(reference)
	if order == nil {
		return nil, repositories.ErrOrderNotFound
	}

	orderCopy := *order
	return &orderCopy, nil
}

func (r *OrderRepositoryMemory) ListAll(ctx context.Context) ([]*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderCopy := *order
		orders = append(orders, &orderCopy)
	}

	for i := 1; i < len(orders); i++ {
		for j := i; j > 0 && orders[j].CreatedAt.After(orders[j-1].CreatedAt); j-- {
			orders[j], orders[j-1] = orders[j-1], orders[j]
		}
	}

	return orders, nil
}

func (r *OrderRepositoryMemory) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[orderID]
	if !exists {
		return repositories.ErrOrderNotFound
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepositoryMemory) MarkPaid(ctx context.Context, reference string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := r.findByReference(reference)
	if order == nil {
		return repositories.ErrOrderNotFound
	}

	if order.Payment.Status == entities.PaymentStatusPaid {
		return repositories.ErrAlreadyPaid
	}

	order.Payment.Status = entities.PaymentStatusPaid
	order.Payment.PaidAt = &paidAt
	order.Status = entities.OrderStatusPaid
	order.UpdatedAt = paidAt
	return nil
}

func (r *OrderRepositoryMemory) MarkFailed(ctx context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := r.findByReference(reference)
	if order == nil {
		return repositories.ErrOrderNotFound
	}

	if order.Payment.Status == entities.PaymentStatusPaid {
		return repositories.ErrAlreadyPaid
	}

	order.Payment.Status = entities.PaymentStatusFailed
	order.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepositoryMemory) CountOrders(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *OrderRepositoryMemory) PaidRevenue(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, order := range r.orders {
		if order.Status == entities.OrderStatusPaid || order.Payment.Status == entities.PaymentStatusPaid {
			total += order.TotalAmount
		}
	}
	return total, nil
}

func (r *OrderRepositoryMemory) CountDistinctCustomers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emails := make(map[string]struct{})
	for _, order := range r.orders {
		emails[order.Customer.Email] = struct{}{}
	}
	return int64(len(emails)), nil
}

func (r *OrderRepositoryMemory) findByReference(reference string) *entities.Order {
	for _, order := range r.orders {
		if order.Payment.Reference == reference {
			return order
		}
	}
	return nil
}
