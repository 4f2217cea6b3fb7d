package repositories

import (
	"context"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, productID string) (*entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Product, error)
	ListAll(ctx context.Context) ([]*entities.Product, error)
	ListActive(ctx context.Context) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error

	// DecrementStock atomically subtracts qty from the product's stock,
	// matching only if enough stock remains. Stock can never go negative.
	DecrementStock(ctx context.Context, productID string, qty int) error

	CountProducts(ctx context.Context) (int64, error)
}

var (
	ErrProductNotFound   = &RepositoryError{"product not found"}
	ErrSlugTaken         = &RepositoryError{"slug already in use"}
	ErrInsufficientStock = &RepositoryError{"insufficient stock"}
)
