package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

const PaymentProviderPaystack = "paystack"

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem carries a snapshot of the product taken at order-creation time.
// Later catalog edits must not change historical order totals.
type OrderItem struct {
	ProductID     string  `json:"product_id"`
	NameSnapshot  string  `json:"name_snapshot"`
	PriceSnapshot float64 `json:"price_snapshot"`
	Qty           int     `json:"qty"`
	LineTotal     float64 `json:"line_total"`

	// Populated on admin reads only; zero-valued elsewhere.
	ProductSlug   string   `json:"product_slug,omitempty"`
	ProductImages []string `json:"product_images,omitempty"`
}

type Payment struct {
	Provider  string        `json:"provider"`
	Reference string        `json:"reference"`
	Status    PaymentStatus `json:"status"`
	PaidAt    *time.Time    `json:"paid_at"`
}

type Order struct {
	ID          string      `json:"id"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Payment     Payment     `json:"payment"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// orderTransitions is the only place order status transitions are defined.
// pending→paid happens through payment verification; the rest are admin
// fulfilment moves.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid},
	OrderStatusPaid:       {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusDelivered},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusDelivered:
		return true
	}
	return false
}

// A failed verification may be retried, so failed→paid stays open. Paid is
// terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusFailed:  {PaymentStatusPaid},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
