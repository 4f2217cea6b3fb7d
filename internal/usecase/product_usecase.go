package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type CreateProductInput struct {
	Name        string
	Slug        string
	Description string
	Price       float64
	StockQty    int
	Images      []string
}

// UpdateProductInput uses pointers so only supplied fields overwrite the
// stored product.
type UpdateProductInput struct {
	Name        *string
	Slug        *string
	Description *string
	Price       *float64
	StockQty    *int
	Images      []string
}

type ProductUseCase struct {
	productRepo repositories.ProductRepository
	logger      *logger.Logger
}

func NewProductUseCase(productRepo repositories.ProductRepository, logger *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ProductUseCase) ListPublic(ctx context.Context) ([]*entities.Product, error) {
	return uc.productRepo.ListActive(ctx)
}

func (uc *ProductUseCase) GetPublicBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	product, err := uc.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, repositories.ErrProductNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) ListAdmin(ctx context.Context) ([]*entities.Product, error) {
	return uc.productRepo.ListAll(ctx)
}

func (uc *ProductUseCase) GetByID(ctx context.Context, productID string) (*entities.Product, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}
	return uc.productRepo.GetByID(ctx, productID)
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entities.Product, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, ErrInvalidProductData
	}
	if input.Price < 0 || input.StockQty < 0 {
		return nil, ErrInvalidProductData
	}
	if len(input.Images) > entities.MaxProductImages {
		return nil, ErrTooManyImages
	}

	if _, err := uc.productRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, fmt.Errorf("%w: %s", repositories.ErrSlugTaken, input.Slug)
	} else if !errors.Is(err, repositories.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	now := time.Now()
	product := &entities.Product{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		StockQty:    input.StockQty,
		Images:      input.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Info("Product created", "product_id", product.ID, "slug", product.Slug)
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, productID string, input UpdateProductInput) (*entities.Product, error) {
	product, err := uc.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrInvalidProductData
		}
		product.Price = *input.Price
	}
	if input.StockQty != nil {
		if *input.StockQty < 0 {
			return nil, ErrInvalidProductData
		}
		product.StockQty = *input.StockQty
	}
	if input.Images != nil {
		if len(input.Images) > entities.MaxProductImages {
			return nil, ErrTooManyImages
		}
		product.Images = input.Images
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (uc *ProductUseCase) ToggleActive(ctx context.Context, productID string) (*entities.Product, error) {
	product, err := uc.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.IsActive = !product.IsActive

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to toggle product: %w", err)
	}

	uc.logger.Info("Product active flag toggled", "product_id", product.ID, "is_active", product.IsActive)
	return product, nil
}

var (
	ErrInvalidProductID   = errors.New("invalid product ID")
	ErrInvalidProductData = errors.New("invalid product data")
	ErrTooManyImages      = fmt.Errorf("a product can have at most %d images", entities.MaxProductImages)
)
