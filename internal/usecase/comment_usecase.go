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

type CommentUseCase struct {
	commentRepo repositories.CommentRepository
	blogRepo    repositories.BlogRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo repositories.CommentRepository,
	blogRepo repositories.BlogRepository,
	logger *logger.Logger,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		logger:      logger,
	}
}

func (uc *CommentUseCase) ListApprovedForPost(ctx context.Context, postID string) ([]*entities.Comment, error) {
	return uc.commentRepo.ListByPost(ctx, postID, true)
}

// AddComment accepts a visitor comment; it stays hidden until a moderator
// approves it.
func (uc *CommentUseCase) AddComment(ctx context.Context, postID, name, email, content string) (*entities.Comment, error) {
	if name == "" || email == "" || content == "" {
		return nil, ErrInvalidCommentData
	}

	if _, err := uc.blogRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &entities.Comment{
		PostID:     postID,
		Name:       name,
		Email:      email,
		Content:    content,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListAll returns every comment with its post's title and slug attached for
// the moderation screen.
func (uc *CommentUseCase) ListAll(ctx context.Context) ([]*entities.Comment, error) {
	comments, err := uc.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	posts := make(map[string]*entities.BlogPost)
	for _, comment := range comments {
		post, ok := posts[comment.PostID]
		if !ok {
			post, err = uc.blogRepo.GetByID(ctx, comment.PostID)
			if err != nil {
				if errors.Is(err, repositories.ErrBlogNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to expand comment post: %w", err)
			}
			posts[comment.PostID] = post
		}
		comment.PostTitle = post.Title
		comment.PostSlug = post.Slug
	}

	return comments, nil
}

func (uc *CommentUseCase) ListForPostAdmin(ctx context.Context, postID string) ([]*entities.Comment, error) {
	return uc.commentRepo.ListByPost(ctx, postID, false)
}

func (uc *CommentUseCase) ToggleApproval(ctx context.Context, commentID string) (*entities.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.IsApproved = !comment.IsApproved

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to toggle comment approval: %w", err)
	}

	return comment, nil
}

// Reply appends a moderator reply and approves the comment so the exchange
// is visible.
func (uc *CommentUseCase) Reply(ctx context.Context, commentID, adminName, content string) (*entities.Comment, error) {
	if content == "" {
		return nil, ErrInvalidCommentData
	}
	if adminName == "" {
		adminName = "Admin"
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Replies = append(comment.Replies, entities.CommentReply{
		Name:      adminName,
		Content:   content,
		CreatedAt: time.Now(),
	})
	comment.IsApproved = true

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to reply to comment: %w", err)
	}

	return comment, nil
}

func (uc *CommentUseCase) DeleteComment(ctx context.Context, commentID string) error {
	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	uc.logger.Info("Comment deleted", "comment_id", commentID)
	return nil
}

var ErrInvalidCommentData = errors.New("name, email and content are required")
