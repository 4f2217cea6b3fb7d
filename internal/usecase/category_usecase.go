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

type CategoryUseCase struct {
	categoryRepo repositories.CategoryRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(categoryRepo repositories.CategoryRepository, logger *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return uc.categoryRepo.ListAll(ctx)
}

// CreateCategory derives the slug from the name.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, name, description string) (*entities.Category, error) {
	if name == "" {
		return nil, ErrInvalidCategoryData
	}

	slug := entities.Slugify(name)

	if _, err := uc.categoryRepo.GetBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: %s", repositories.ErrSlugTaken, slug)
	} else if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}

	now := time.Now()
	category := &entities.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		return err
	}

	uc.logger.Info("Category deleted", "category_id", categoryID)
	return nil
}

var ErrInvalidCategoryData = errors.New("category name is required")
