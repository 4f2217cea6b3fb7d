package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/memory"
)

func newProductUseCase() (*ProductUseCase, *memory.ProductRepositoryMemory) {
	repo := memory.NewProductRepositoryMemory()
	return NewProductUseCase(repo, logger.NewLogger()), repo
}

func TestProductUseCase_CreateProduct(t *testing.T) {
	useCase, _ := newProductUseCase()
	ctx := context.Background()

	product, err := useCase.CreateProduct(ctx, CreateProductInput{
		Name:     "Sea Moss Gel",
		Slug:     "sea-moss-gel",
		Price:    120.0,
		StockQty: 10,
		Images:   []string{"https://cdn.example.com/sea-moss.jpg"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.IsActive)
}

func TestProductUseCase_CreateProduct_DuplicateSlug(t *testing.T) {
	useCase, _ := newProductUseCase()
	ctx := context.Background()

	_, err := useCase.CreateProduct(ctx, CreateProductInput{Name: "Sea Moss Gel", Slug: "sea-moss-gel", Price: 120.0, StockQty: 10})
	assert.NoError(t, err)

	_, err = useCase.CreateProduct(ctx, CreateProductInput{Name: "Sea Moss Gel v2", Slug: "sea-moss-gel", Price: 130.0, StockQty: 5})
	assert.ErrorIs(t, err, repositories.ErrSlugTaken)
}

func TestProductUseCase_CreateProduct_Invalid(t *testing.T) {
	useCase, _ := newProductUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateProductInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   CreateProductInput{Slug: "x", Price: 1},
			wantErr: ErrInvalidProductData,
		},
		{
			name:    "negative price",
			input:   CreateProductInput{Name: "X", Slug: "x", Price: -1},
			wantErr: ErrInvalidProductData,
		},
		{
			name:    "negative stock",
			input:   CreateProductInput{Name: "X", Slug: "x", Price: 1, StockQty: -1},
			wantErr: ErrInvalidProductData,
		},
		{
			name: "too many images",
			input: CreateProductInput{Name: "X", Slug: "x", Price: 1,
				Images: []string{"a", "b", "c", "d", "e"}},
			wantErr: ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.CreateProduct(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductUseCase_UpdateProduct_Partial(t *testing.T) {
	useCase, _ := newProductUseCase()
	ctx := context.Background()

	created, err := useCase.CreateProduct(ctx, CreateProductInput{
		Name:        "Sea Moss Gel",
		Slug:        "sea-moss-gel",
		Description: "Raw wildcrafted sea moss",
		Price:       120.0,
		StockQty:    10,
	})
	assert.NoError(t, err)

	newPrice := 150.0
	updated, err := useCase.UpdateProduct(ctx, created.ID, UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Sea Moss Gel", updated.Name)
	assert.Equal(t, "Raw wildcrafted sea moss", updated.Description)
	assert.Equal(t, 10, updated.StockQty)
}

func TestProductUseCase_ToggleActive_HidesFromPublicList(t *testing.T) {
	useCase, _ := newProductUseCase()
	ctx := context.Background()

	created, err := useCase.CreateProduct(ctx, CreateProductInput{Name: "Sea Moss Gel", Slug: "sea-moss-gel", Price: 120.0, StockQty: 10})
	assert.NoError(t, err)

	toggled, err := useCase.ToggleActive(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, toggled.IsActive)

	public, err := useCase.ListPublic(ctx)
	assert.NoError(t, err)
	assert.Empty(t, public)

	admin, err := useCase.ListAdmin(ctx)
	assert.NoError(t, err)
	assert.Len(t, admin, 1)

	_, err = useCase.GetPublicBySlug(ctx, "sea-moss-gel")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
