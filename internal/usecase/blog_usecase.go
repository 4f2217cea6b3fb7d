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

type CreateBlogInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	CoverImageURL string
	Tags          []string
	CategoryID    string
}

type UpdateBlogInput struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	CoverImageURL *string
	Tags          []string
	CategoryID    *string
}

type BlogUseCase struct {
	blogRepo repositories.BlogRepository
	logger   *logger.Logger
}

func NewBlogUseCase(blogRepo repositories.BlogRepository, logger *logger.Logger) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

func (uc *BlogUseCase) ListPublic(ctx context.Context) ([]*entities.BlogPost, error) {
	return uc.blogRepo.ListPublished(ctx)
}

func (uc *BlogUseCase) GetPublicBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	return uc.blogRepo.GetPublishedBySlug(ctx, slug)
}

func (uc *BlogUseCase) ListAdmin(ctx context.Context) ([]*entities.BlogPost, error) {
	return uc.blogRepo.ListAll(ctx)
}

func (uc *BlogUseCase) GetByID(ctx context.Context, postID string) (*entities.BlogPost, error) {
	return uc.blogRepo.GetByID(ctx, postID)
}

// CreateBlog always creates a draft; publishing is a separate step.
func (uc *BlogUseCase) CreateBlog(ctx context.Context, input CreateBlogInput) (*entities.BlogPost, error) {
	if input.Title == "" || input.Slug == "" || input.Content == "" {
		return nil, ErrInvalidBlogData
	}

	now := time.Now()
	post := &entities.BlogPost{
		Title:         input.Title,
		Slug:          input.Slug,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		CoverImageURL: input.CoverImageURL,
		Tags:          input.Tags,
		CategoryID:    input.CategoryID,
		Status:        entities.BlogStatusDraft,
		AllowComments: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrSlugTaken) {
			return nil, fmt.Errorf("%w: %s", repositories.ErrSlugTaken, input.Slug)
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	uc.logger.Info("Blog post created", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

func (uc *BlogUseCase) UpdateBlog(ctx context.Context, postID string, input UpdateBlogInput) (*entities.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Slug != nil {
		post.Slug = *input.Slug
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.CoverImageURL != nil {
		post.CoverImageURL = *input.CoverImageURL
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.CategoryID != nil {
		post.CategoryID = *input.CategoryID
	}

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	return post, nil
}

func (uc *BlogUseCase) PublishBlog(ctx context.Context, postID string) (*entities.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post.Status = entities.BlogStatusPublished
	post.PublishedAt = &now

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to publish blog post: %w", err)
	}

	uc.logger.Info("Blog post published", "post_id", post.ID)
	return post, nil
}

func (uc *BlogUseCase) UnpublishBlog(ctx context.Context, postID string) (*entities.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Status = entities.BlogStatusDraft
	post.PublishedAt = nil

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to unpublish blog post: %w", err)
	}

	return post, nil
}

var ErrInvalidBlogData = errors.New("title, slug and content are required")
