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

type ProductRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewProductRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*ProductRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("products")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product index: %w", err)
	}

	return &ProductRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *ProductRepositoryMongo) Create(ctx context.Context, product *entities.Product) error {
	doc := toProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}

	return nil
}

func (r *ProductRepositoryMongo) GetByID(ctx context.Context, productID string) (*entities.Product, error) {
	oid, err := objectIDFromHex(productID)
	if err != nil {
		return nil, repositories.ErrProductNotFound
	}

	var doc ProductDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return toProductEntity(&doc), nil
}

func (r *ProductRepositoryMongo) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by slug: %w", err)
	}

	return toProductEntity(&doc), nil
}

func (r *ProductRepositoryMongo) ListAll(ctx context.Context) ([]*entities.Product, error) {
	return r.list(ctx, bson.M{})
}

func (r *ProductRepositoryMongo) ListActive(ctx context.Context) ([]*entities.Product, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *ProductRepositoryMongo) list(ctx context.Context, filter bson.M) ([]*entities.Product, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]*entities.Product, len(docs))
	for i := range docs {
		products[i] = toProductEntity(&docs[i])
	}
	return products, nil
}

func (r *ProductRepositoryMongo) Update(ctx context.Context, product *entities.Product) error {
	oid, err := objectIDFromHex(product.ID)
	if err != nil {
		return repositories.ErrProductNotFound
	}

	product.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":        product.Name,
			"slug":        product.Slug,
			"description": product.Description,
			"price":       product.Price,
			"stock_qty":   product.StockQty,
			"images":      product.Images,
			"is_active":   product.IsActive,
			"updated_at":  product.UpdatedAt,
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrSlugTaken
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrProductNotFound
	}

	return nil
}

// DecrementStock matches only when enough stock remains, so the counter can
// never go below zero even under concurrent verifications.
func (r *ProductRepositoryMongo) DecrementStock(ctx context.Context, productID string, qty int) error {
	oid, err := objectIDFromHex(productID)
	if err != nil {
		return repositories.ErrProductNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid, "stock_qty": bson.M{"$gte": qty}},
		bson.M{
			"$inc": bson.M{"stock_qty": -qty},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("failed to check product existence: %w", err)
		}
		if count == 0 {
			return repositories.ErrProductNotFound
		}
		return repositories.ErrInsufficientStock
	}

	return nil
}

func (r *ProductRepositoryMongo) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func toProductDocument(product *entities.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Price:       product.Price,
		StockQty:    product.StockQty,
		Images:      product.Images,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.ID != "" {
		if oid, err := objectIDFromHex(product.ID); err == nil {
			doc.ID = oid
		}
	}

	return doc
}

func toProductEntity(doc *ProductDocument) *entities.Product {
	return &entities.Product{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		Price:       doc.Price,
		StockQty:    doc.StockQty,
		Images:      doc.Images,
		IsActive:    doc.IsActive,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
