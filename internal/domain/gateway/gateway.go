package gateway

import "context"

// StatusSuccess is the transaction status the gateway reports for a
// completed payment.
const StatusSuccess = "success"

type Transaction struct {
	Reference        string
	AuthorizationURL string
}

type Verification struct {
	Status string
	Amount int64
}

// PaymentGateway abstracts the third-party payment processor. Amounts are in
// the smallest currency unit.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, email string, amount int64, metadata map[string]string) (*Transaction, error)
	VerifyTransaction(ctx context.Context, reference string) (*Verification, error)
}
