package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
	"github.com/Gabrielduah055/menHealthBackend/internal/domain/repositories"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

type CommentRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewCommentRepositoryMongo(db *mongo.Database, logger *logger.Logger) *CommentRepositoryMongo {
	return &CommentRepositoryMongo{
		collection: db.Collection("comments"),
		logger:     logger,
	}
}

func (r *CommentRepositoryMongo) Create(ctx context.Context, comment *entities.Comment) error {
	doc, err := toCommentDocument(comment)
	if err != nil {
		return err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid.Hex()
	}

	return nil
}

func (r *CommentRepositoryMongo) GetByID(ctx context.Context, commentID string) (*entities.Comment, error) {
	oid, err := objectIDFromHex(commentID)
	if err != nil {
		return nil, repositories.ErrCommentNotFound
	}

	var doc CommentDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return toCommentEntity(&doc), nil
}

func (r *CommentRepositoryMongo) ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]*entities.Comment, error) {
	oid, err := objectIDFromHex(postID)
	if err != nil {
		return nil, repositories.ErrBlogNotFound
	}

	filter := bson.M{"post_id": oid}
	if approvedOnly {
		filter["is_approved"] = true
	}

	return r.list(ctx, filter)
}

func (r *CommentRepositoryMongo) ListAll(ctx context.Context) ([]*entities.Comment, error) {
	return r.list(ctx, bson.M{})
}

func (r *CommentRepositoryMongo) list(ctx context.Context, filter bson.M) ([]*entities.Comment, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []CommentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	comments := make([]*entities.Comment, len(docs))
	for i := range docs {
		comments[i] = toCommentEntity(&docs[i])
	}
	return comments, nil
}

func (r *CommentRepositoryMongo) Update(ctx context.Context, comment *entities.Comment) error {
	oid, err := objectIDFromHex(comment.ID)
	if err != nil {
		return repositories.ErrCommentNotFound
	}

	comment.UpdatedAt = time.Now()

	replies := make([]CommentReplyDocument, len(comment.Replies))
	for i, reply := range comment.Replies {
		replies[i] = CommentReplyDocument(reply)
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"is_approved": comment.IsApproved,
			"replies":     replies,
			"updated_at":  comment.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrCommentNotFound
	}

	return nil
}

func (r *CommentRepositoryMongo) Delete(ctx context.Context, commentID string) error {
	oid, err := objectIDFromHex(commentID)
	if err != nil {
		return repositories.ErrCommentNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.DeletedCount == 0 {
		return repositories.ErrCommentNotFound
	}

	return nil
}

func toCommentDocument(comment *entities.Comment) (*CommentDocument, error) {
	postID, err := objectIDFromHex(comment.PostID)
	if err != nil {
		return nil, err
	}

	doc := &CommentDocument{
		PostID:     postID,
		Name:       comment.Name,
		Email:      comment.Email,
		Content:    comment.Content,
		IsApproved: comment.IsApproved,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
		Replies:    make([]CommentReplyDocument, len(comment.Replies)),
	}

	for i, reply := range comment.Replies {
		doc.Replies[i] = CommentReplyDocument(reply)
	}

	if comment.ID != "" {
		oid, err := objectIDFromHex(comment.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}

	return doc, nil
}

func toCommentEntity(doc *CommentDocument) *entities.Comment {
	replies := make([]entities.CommentReply, len(doc.Replies))
	for i, reply := range doc.Replies {
		replies[i] = entities.CommentReply(reply)
	}

	return &entities.Comment{
		ID:         doc.ID.Hex(),
		PostID:     doc.PostID.Hex(),
		Name:       doc.Name,
		Email:      doc.Email,
		Content:    doc.Content,
		IsApproved: doc.IsApproved,
		Replies:    replies,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
