package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/gateway"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByPaymentReference(ctx context.Context, reference string) (*entities.Order, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*entities.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, reference string, paidAt time.Time) error {
	args := m.Called(ctx, reference, paidAt)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkFailed(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

func (m *MockOrderRepository) CountOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) PaidRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) CountDistinctCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID string) (*entities.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]*entities.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListActive(ctx context.Context) ([]*entities.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, productID string, qty int) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *MockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) InitializeTransaction(ctx context.Context, email string, amount int64, metadata map[string]string) (*gateway.Transaction, error) {
	args := m.Called(ctx, email, amount, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Transaction), args.Error(1)
}

func (m *MockPaymentGateway) VerifyTransaction(ctx context.Context, reference string) (*gateway.Verification, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Verification), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishPaymentReceived(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func testCustomer() entities.Customer {
	return entities.Customer{
		Name:    "Ama Mensah",
		Email:   "ama@example.com",
		Phone:   "+233201234567",
		Address: "Accra",
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)
	mockPublisher := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	mockProducts.On("GetByID", mock.Anything, "prod1").Return(&entities.Product{
		ID:       "prod1",
		Name:     "Sea Moss Gel",
		Price:    120.0,
		StockQty: 10,
	}, nil)
	mockProducts.On("GetByID", mock.Anything, "prod2").Return(&entities.Product{
		ID:       "prod2",
		Name:     "Shilajit Resin",
		Price:    80.0,
		StockQty: 3,
	}, nil)

	// 2*120 + 1*80 = 320.00 -> 32000 in the smallest unit.
	mockGateway.On("InitializeTransaction", mock.Anything, "ama@example.com", int64(32000), mock.Anything).
		Return(&gateway.Transaction{
			Reference:        "ref-123",
			AuthorizationURL: "https://pay.example.com/ref-123",
		}, nil)

	var wg sync.WaitGroup
	wg.Add(1)

	mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entities.Order)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.Equal(t, entities.PaymentStatusPending, order.Payment.Status)
			assert.Equal(t, "ref-123", order.Payment.Reference)
			assert.Equal(t, 320.0, order.TotalAmount)
			assert.Len(t, order.Items, 2)
			assert.Equal(t, "Sea Moss Gel", order.Items[0].NameSnapshot)
			assert.Equal(t, 120.0, order.Items[0].PriceSnapshot)
			assert.Equal(t, 240.0, order.Items[0].LineTotal)
		})

	mockPublisher.On("PublishOrderCreated", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			wg.Done()
		})

	result, err := useCase.CreateOrder(ctx, testCustomer(), []OrderItemRequest{
		{ProductID: "prod1", Qty: 2},
		{ProductID: "prod2", Qty: 1},
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "https://pay.example.com/ref-123", result.PaymentURL)
	assert.Equal(t, "ref-123", result.PaymentReference)
	assert.Equal(t, 320.0, result.Order.TotalAmount)

	wg.Wait()

	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockGateway.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Stock is untouched at checkout; it only moves after verification.
	mockProducts.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_InsufficientStock(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)
	mockPublisher := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	mockProducts.On("GetByID", mock.Anything, "prod1").Return(&entities.Product{
		ID:       "prod1",
		Name:     "Sea Moss Gel",
		Price:    120.0,
		StockQty: 1,
	}, nil)

	result, err := useCase.CreateOrder(ctx, testCustomer(), []OrderItemRequest{
		{ProductID: "prod1", Qty: 5},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	mockGateway.AssertNotCalled(t, "InitializeTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_ProductNotFound(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)
	mockPublisher := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	mockProducts.On("GetByID", mock.Anything, "missing").
		Return(nil, repositories.ErrProductNotFound)

	result, err := useCase.CreateOrder(ctx, testCustomer(), []OrderItemRequest{
		{ProductID: "missing", Qty: 1},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	mockGateway.AssertNotCalled(t, "InitializeTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_GatewayInitFails(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)
	mockPublisher := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	mockProducts.On("GetByID", mock.Anything, "prod1").Return(&entities.Product{
		ID:       "prod1",
		Name:     "Sea Moss Gel",
		Price:    120.0,
		StockQty: 10,
	}, nil)

	mockGateway.On("InitializeTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("gateway timeout"))

	result, err := useCase.CreateOrder(ctx, testCustomer(), []OrderItemRequest{
		{ProductID: "prod1", Qty: 1},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPaymentInit)

	// Nothing is persisted when the gateway refuses the transaction.
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestOrderUseCase_CreateOrder_InvalidInput(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)
	mockPublisher := new(MockEventPublisher)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, mockPublisher, logger.NewLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		customer entities.Customer
		items    []OrderItemRequest
		wantErr  error
	}{
		{
			name:     "missing customer name",
			customer: entities.Customer{Email: "ama@example.com"},
			items:    []OrderItemRequest{{ProductID: "prod1", Qty: 1}},
			wantErr:  ErrMissingCustomer,
		},
		{
			name:     "missing customer email",
			customer: entities.Customer{Name: "Ama Mensah"},
			items:    []OrderItemRequest{{ProductID: "prod1", Qty: 1}},
			wantErr:  ErrMissingCustomer,
		},
		{
			name:     "empty items",
			customer: testCustomer(),
			items:    []OrderItemRequest{},
			wantErr:  ErrEmptyItems,
		},
		{
			name:     "zero quantity",
			customer: testCustomer(),
			items:    []OrderItemRequest{{ProductID: "prod1", Qty: 0}},
			wantErr:  ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.CreateOrder(ctx, tt.customer, tt.items)
			assert.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mockGateway.AssertNotCalled(t, "InitializeTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUseCase_GetOrder_NotFound(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, nil, logger.NewLogger())
	ctx := context.Background()

	mockOrders.On("GetByID", mock.Anything, "non-existent").
		Return(nil, repositories.ErrOrderNotFound)

	order, err := useCase.GetOrder(ctx, "non-existent")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	mockOrders.AssertExpectations(t)
}

func TestOrderUseCase_GetOrderExpanded_DeletedProductKeepsSnapshot(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, nil, logger.NewLogger())
	ctx := context.Background()

	mockOrders.On("GetByID", mock.Anything, "order1").Return(&entities.Order{
		ID: "order1",
		Items: []entities.OrderItem{
			{ProductID: "gone", NameSnapshot: "Discontinued Tea", PriceSnapshot: 50.0, Qty: 1, LineTotal: 50.0},
		},
	}, nil)
	mockProducts.On("GetByID", mock.Anything, "gone").
		Return(nil, repositories.ErrProductNotFound)

	order, err := useCase.GetOrderExpanded(ctx, "order1")

	assert.NoError(t, err)
	assert.Equal(t, "Discontinued Tea", order.Items[0].NameSnapshot)
	assert.Empty(t, order.Items[0].ProductSlug)

	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestOrderUseCase_UpdateOrderStatus(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, nil, logger.NewLogger())
	ctx := context.Background()

	mockOrders.On("GetByID", mock.Anything, "order1").Return(&entities.Order{
		ID:     "order1",
		Status: entities.OrderStatusPaid,
	}, nil)
	mockOrders.On("UpdateStatus", mock.Anything, "order1", entities.OrderStatusProcessing).Return(nil)

	order, err := useCase.UpdateOrderStatus(ctx, "order1", "processing")

	assert.NoError(t, err)
	assert.Equal(t, entities.OrderStatusProcessing, order.Status)

	mockOrders.AssertExpectations(t)
}

func TestOrderUseCase_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, nil, logger.NewLogger())
	ctx := context.Background()

	mockOrders.On("GetByID", mock.Anything, "order1").Return(&entities.Order{
		ID:     "order1",
		Status: entities.OrderStatusPending,
	}, nil)

	order, err := useCase.UpdateOrderStatus(ctx, "order1", "delivered")

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUseCase_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockProducts := new(MockProductRepository)
	mockGateway := new(MockPaymentGateway)

	useCase := NewOrderUseCase(mockOrders, mockProducts, mockGateway, nil, logger.NewLogger())
	ctx := context.Background()

	_, err := useCase.UpdateOrderStatus(ctx, "order1", "shipped")

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	mockOrders.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
