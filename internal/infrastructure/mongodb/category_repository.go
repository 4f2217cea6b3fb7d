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

type CategoryRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewCategoryRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*CategoryRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("categories")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category index: %w", err)
	}

	return &CategoryRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *CategoryRepositoryMongo) Create(ctx context.Context, category *entities.Category) error {
	doc := &CategoryDocument{
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid.Hex()
	}

	return nil
}

func (r *CategoryRepositoryMongo) GetByID(ctx context.Context, categoryID string) (*entities.Category, error) {
	oid, err := objectIDFromHex(categoryID)
	if err != nil {
		return nil, repositories.ErrCategoryNotFound
	}

	var doc CategoryDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return toCategoryEntity(&doc), nil
}

func (r *CategoryRepositoryMongo) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var doc CategoryDocument
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}

	return toCategoryEntity(&doc), nil
}

func (r *CategoryRepositoryMongo) ListAll(ctx context.Context) ([]*entities.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []CategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]*entities.Category, len(docs))
	for i := range docs {
		categories[i] = toCategoryEntity(&docs[i])
	}
	return categories, nil
}

func (r *CategoryRepositoryMongo) Delete(ctx context.Context, categoryID string) error {
	oid, err := objectIDFromHex(categoryID)
	if err != nil {
		return repositories.ErrCategoryNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.DeletedCount == 0 {
		return repositories.ErrCategoryNotFound
	}

	return nil
}

func toCategoryEntity(doc *CategoryDocument) *entities.Category {
	return &entities.Category{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
