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

type BlogRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewBlogRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*BlogRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("blog_posts")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blog index: %w", err)
	}

	return &BlogRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *BlogRepositoryMongo) Create(ctx context.Context, post *entities.BlogPost) error {
	doc, err := toBlogDocument(post)
	if err != nil {
		return err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid.Hex()
	}

	return nil
}

func (r *BlogRepositoryMongo) GetByID(ctx context.Context, postID string) (*entities.BlogPost, error) {
	oid, err := objectIDFromHex(postID)
	if err != nil {
		return nil, repositories.ErrBlogNotFound
	}

	var doc BlogPostDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}

	return toBlogEntity(&doc), nil
}

// GetPublishedBySlug is the public read path, so it bumps the view counter
// in the same round trip.
func (r *BlogRepositoryMongo) GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var doc BlogPostDocument
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{
			"slug":   slug,
			"status": string(entities.BlogStatusPublished),
		},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by slug: %w", err)
	}

	return toBlogEntity(&doc), nil
}

func (r *BlogRepositoryMongo) ListPublished(ctx context.Context) ([]*entities.BlogPost, error) {
	return r.list(ctx,
		bson.M{"status": string(entities.BlogStatusPublished)},
		bson.D{{Key: "published_at", Value: -1}})
}

func (r *BlogRepositoryMongo) ListAll(ctx context.Context) ([]*entities.BlogPost, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *BlogRepositoryMongo) list(ctx context.Context, filter bson.M, sort bson.D) ([]*entities.BlogPost, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []BlogPostDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}

	posts := make([]*entities.BlogPost, len(docs))
	for i := range docs {
		posts[i] = toBlogEntity(&docs[i])
	}
	return posts, nil
}

func (r *BlogRepositoryMongo) Update(ctx context.Context, post *entities.BlogPost) error {
	oid, err := objectIDFromHex(post.ID)
	if err != nil {
		return repositories.ErrBlogNotFound
	}

	post.UpdatedAt = time.Now()

	fields := bson.M{
		"title":           post.Title,
		"slug":            post.Slug,
		"cover_image_url": post.CoverImageURL,
		"excerpt":         post.Excerpt,
		"content":         post.Content,
		"status":          string(post.Status),
		"tags":            post.Tags,
		"views":           post.Views,
		"allow_comments":  post.AllowComments,
		"published_at":    post.PublishedAt,
		"updated_at":      post.UpdatedAt,
	}
	if post.CategoryID != "" {
		categoryID, err := objectIDFromHex(post.CategoryID)
		if err != nil {
			return repositories.ErrCategoryNotFound
		}
		fields["category_id"] = categoryID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrSlugTaken
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrBlogNotFound
	}

	return nil
}

func toBlogDocument(post *entities.BlogPost) (*BlogPostDocument, error) {
	doc := &BlogPostDocument{
		Title:         post.Title,
		Slug:          post.Slug,
		CoverImageURL: post.CoverImageURL,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		Status:        string(post.Status),
		Tags:          post.Tags,
		Views:         post.Views,
		AllowComments: post.AllowComments,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}

	if post.ID != "" {
		oid, err := objectIDFromHex(post.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}

	if post.CategoryID != "" {
		categoryID, err := objectIDFromHex(post.CategoryID)
		if err != nil {
			return nil, err
		}
		doc.CategoryID = &categoryID
	}

	return doc, nil
}

func toBlogEntity(doc *BlogPostDocument) *entities.BlogPost {
	post := &entities.BlogPost{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Slug:          doc.Slug,
		CoverImageURL: doc.CoverImageURL,
		Excerpt:       doc.Excerpt,
		Content:       doc.Content,
		Status:        entities.BlogStatus(doc.Status),
		Tags:          doc.Tags,
		Views:         doc.Views,
		AllowComments: doc.AllowComments,
		PublishedAt:   doc.PublishedAt,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	if doc.CategoryID != nil {
		post.CategoryID = doc.CategoryID.Hex()
	}

	return post
}
