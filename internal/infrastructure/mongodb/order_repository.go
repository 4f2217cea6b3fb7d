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

type OrderRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewOrderRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*OrderRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("orders")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "payment.reference", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order indexes: %w", err)
	}

	return &OrderRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *OrderRepositoryMongo) Create(ctx context.Context, order *entities.Order) error {
	doc, err := toOrderDocument(order)
	if err != nil {
		return err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrOrderAlreadyExists
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}

	return nil
}

func (r *OrderRepositoryMongo) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	oid, err := objectIDFromHex(orderID)
	if err != nil {
		return nil, repositories.ErrOrderNotFound
	}

	var doc OrderDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return toOrderEntity(&doc), nil
}

func (r *OrderRepositoryMongo) GetByPaymentReference(ctx context.Context, reference string) (*entities.Order, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"payment.reference": reference}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by reference: %w", err)
	}

	return toOrderEntity(&doc), nil
}

func (r *OrderRepositoryMongo) ListAll(ctx context.Context) ([]*entities.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]*entities.Order, len(docs))
	for i := range docs {
		orders[i] = toOrderEntity(&docs[i])
	}
	return orders, nil
}

func (r *OrderRepositoryMongo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	oid, err := objectIDFromHex(orderID)
	if err != nil {
		return repositories.ErrOrderNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrOrderNotFound
	}

	r.logger.Info("Order status updated", "order_id", orderID, "new_status", status)
	return nil
}

// MarkPaid performs the compare-and-set on payment.status so that two
// concurrent verifications cannot both apply stock effects.
func (r *OrderRepositoryMongo) MarkPaid(ctx context.Context, reference string, paidAt time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"payment.reference": reference,
			"payment.status":    bson.M{"$ne": string(entities.PaymentStatusPaid)},
		},
		bson.M{"$set": bson.M{
			"payment.status":  string(entities.PaymentStatusPaid),
			"payment.paid_at": paidAt,
			"status":          string(entities.OrderStatusPaid),
			"updated_at":      paidAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"payment.reference": reference})
		if err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if count == 0 {
			return repositories.ErrOrderNotFound
		}
		return repositories.ErrAlreadyPaid
	}

	return nil
}

func (r *OrderRepositoryMongo) MarkFailed(ctx context.Context, reference string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"payment.reference": reference,
			"payment.status":    bson.M{"$ne": string(entities.PaymentStatusPaid)},
		},
		bson.M{"$set": bson.M{
			"payment.status": string(entities.PaymentStatusFailed),
			"updated_at":     time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"payment.reference": reference})
		if err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if count == 0 {
			return repositories.ErrOrderNotFound
		}
		return repositories.ErrAlreadyPaid
	}

	return nil
}

func (r *OrderRepositoryMongo) CountOrders(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *OrderRepositoryMongo) PaidRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"status": string(entities.OrderStatusPaid)},
			bson.M{"payment.status": string(entities.PaymentStatusPaid)},
		}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregation: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *OrderRepositoryMongo) CountDistinctCustomers(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$customer.email"}}},
		{{Key: "$count", Value: "count"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate customers: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode customer aggregation: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}

func toOrderDocument(order *entities.Order) (*OrderDocument, error) {
	doc := &OrderDocument{
		Customer: CustomerDocument{
			Name:    order.Customer.Name,
			Email:   order.Customer.Email,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		},
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Payment: PaymentDocument{
			Provider:  order.Payment.Provider,
			Reference: order.Payment.Reference,
			Status:    string(order.Payment.Status),
			PaidAt:    order.Payment.PaidAt,
		},
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
		Items:     make([]OrderItemDocument, len(order.Items)),
	}

	if order.ID != "" {
		oid, err := objectIDFromHex(order.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}

	for i, item := range order.Items {
		productID, err := objectIDFromHex(item.ProductID)
		if err != nil {
			return nil, err
		}
		doc.Items[i] = OrderItemDocument{
			ProductID:     productID,
			NameSnapshot:  item.NameSnapshot,
			PriceSnapshot: item.PriceSnapshot,
			Qty:           item.Qty,
			LineTotal:     item.LineTotal,
		}
	}

	return doc, nil
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			ProductID:     item.ProductID.Hex(),
			NameSnapshot:  item.NameSnapshot,
			PriceSnapshot: item.PriceSnapshot,
			Qty:           item.Qty,
			LineTotal:     item.LineTotal,
		}
	}

	return &entities.Order{
		ID:          doc.ID.Hex(),
		Customer:    entities.Customer(doc.Customer),
		Items:       items,
		TotalAmount: doc.TotalAmount,
		Status:      entities.OrderStatus(doc.Status),
		Payment: entities.Payment{
			Provider:  doc.Payment.Provider,
			Reference: doc.Payment.Reference,
			Status:    entities.PaymentStatus(doc.Payment.Status),
			PaidAt:    doc.Payment.PaidAt,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
