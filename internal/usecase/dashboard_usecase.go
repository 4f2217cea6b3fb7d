package usecase

import (
	"context"
	"fmt"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
)

type DashboardStats struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalProducts  int64   `json:"total_products"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCustomers int64   `json:"total_customers"`
}

type DashboardUseCase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

func NewDashboardUseCase(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (uc *DashboardUseCase) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalOrders, err := uc.orderRepo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalProducts, err := uc.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalRevenue, err := uc.orderRepo.PaidRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}

	totalCustomers, err := uc.orderRepo.CountDistinctCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	return &DashboardStats{
		TotalOrders:    totalOrders,
		TotalProducts:  totalProducts,
		TotalRevenue:   totalRevenue,
		TotalCustomers: totalCustomers,
	}, nil
}
