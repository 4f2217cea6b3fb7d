package repositories

import (
	"context"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByPaymentReference(ctx context.Context, reference string) (*entities.Order, error)
	ListAll(ctx context.Context) ([]*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error

	// MarkPaid is an atomic compare-and-set: it transitions the payment to
	// paid unless it is already paid, setting paidAt and the order status in
	// the same update. ErrAlreadyPaid means another verification won the
	// race; the caller must not apply stock effects again.
	MarkPaid(ctx context.Context, reference string, paidAt time.Time) error
	// MarkFailed records a gateway-reported failure. A paid order is never
	// demoted.
	MarkFailed(ctx context.Context, reference string) error

	CountOrders(ctx context.Context) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
	CountDistinctCustomers(ctx context.Context) (int64, error)
}

var (
	ErrOrderNotFound      = &RepositoryError{"order not found"}
	ErrOrderAlreadyExists = &RepositoryError{"order already exists"}
	ErrAlreadyPaid        = &RepositoryError{"payment already completed"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
