package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
)

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]*entities.Product
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		products: make(map[string]*entities.Product),
	}
}

func (r *ProductRepositoryMemory) Create(ctx context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	for _, existing := range r.products {
		if existing.Slug == product.Slug {
			return repositories.ErrSlugTaken
		}
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) GetByID(ctx context.Context, productID string) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[productID]
	if !exists {
		return nil, repositories.ErrProductNotFound
	}

	productCopy := *product
	return &productCopy, nil
}

func (r *ProductRepositoryMemory) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Slug == slug {
			productCopy := *product
			return &productCopy, nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (r *ProductRepositoryMemory) ListAll(ctx context.Context) ([]*entities.Product, error) {
	return r.list(false), nil
}

func (r *ProductRepositoryMemory) ListActive(ctx context.Context) ([]*entities.Product, error) {
	return r.list(true), nil
}

func (r *ProductRepositoryMemory) list(activeOnly bool) []*entities.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entities.Product, 0, len(r.products))
	for _, product := range r.products {
		if activeOnly && !product.IsActive {
			continue
		}
		productCopy := *product
		products = append(products, &productCopy)
	}
	return products
}

func (r *ProductRepositoryMemory) Update(ctx context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return repositories.ErrProductNotFound
	}

	for id, existing := range r.products {
		if id != product.ID && existing.Slug == product.Slug {
			return repositories.ErrSlugTaken
		}
	}

	product.UpdatedAt = time.Now()
	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) DecrementStock(ctx context.Context, productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[productID]
	if !exists {
		return repositories.ErrProductNotFound
	}

	if product.StockQty < qty {
		return repositories.ErrInsufficientStock
	}

	product.StockQty -= qty
	product.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepositoryMemory) CountProducts(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}
