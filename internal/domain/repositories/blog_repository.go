package repositories

import (
	"context"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	GetByID(ctx context.Context, postID string) (*entities.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	ListPublished(ctx context.Context) ([]*entities.BlogPost, error)
	ListAll(ctx context.Context) ([]*entities.BlogPost, error)
	Update(ctx context.Context, post *entities.BlogPost) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	GetByID(ctx context.Context, commentID string) (*entities.Comment, error)
	ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]*entities.Comment, error)
	ListAll(ctx context.Context) ([]*entities.Comment, error)
	Update(ctx context.Context, comment *entities.Comment) error
	Delete(ctx context.Context, commentID string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, categoryID string) (*entities.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
	ListAll(ctx context.Context) ([]*entities.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

var (
	ErrBlogNotFound     = &RepositoryError{"blog post not found"}
	ErrCommentNotFound  = &RepositoryError{"comment not found"}
	ErrCategoryNotFound = &RepositoryError{"category not found"}
)
