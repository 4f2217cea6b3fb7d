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

type AdminUserRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewAdminUserRepositoryMongo(db *mongo.Database, logger *logger.Logger) *AdminUserRepositoryMongo {
	return &AdminUserRepositoryMongo{
		collection: db.Collection("admin_users"),
		logger:     logger,
	}
}

func (r *AdminUserRepositoryMongo) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	var doc AdminUserDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	return toAdminUserEntity(&doc), nil
}

func (r *AdminUserRepositoryMongo) GetByID(ctx context.Context, adminID string) (*entities.AdminUser, error) {
	oid, err := objectIDFromHex(adminID)
	if err != nil {
		return nil, repositories.ErrAdminUserNotFound
	}

	var doc AdminUserDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	return toAdminUserEntity(&doc), nil
}

func toAdminUserEntity(doc *AdminUserDocument) *entities.AdminUser {
	return &entities.AdminUser{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
		AuthorRole:   doc.AuthorRole,
		AvatarLabel:  doc.AvatarLabel,
		IsActive:     doc.IsActive,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

type UserRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewUserRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*UserRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("users")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user index: %w", err)
	}

	return &UserRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *UserRepositoryMongo) Create(ctx context.Context, user *entities.User) error {
	doc := toUserDocument(user)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

func (r *UserRepositoryMongo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc UserDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return toUserEntity(&doc), nil
}

func (r *UserRepositoryMongo) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	oid, err := objectIDFromHex(userID)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}

	var doc UserDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return toUserEntity(&doc), nil
}

func (r *UserRepositoryMongo) Update(ctx context.Context, user *entities.User) error {
	oid, err := objectIDFromHex(user.ID)
	if err != nil {
		return repositories.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"full_name":                 user.FullName,
			"phone":                     user.Phone,
			"location":                  user.Location,
			"profile_photo":             user.ProfilePhoto,
			"password_hash":             user.PasswordHash,
			"is_verified":               user.IsVerified,
			"verification_code":         user.VerificationCode,
			"verification_code_expires": user.VerificationCodeExpires,
			"reset_code":                user.ResetCode,
			"reset_code_expires":        user.ResetCodeExpires,
			"updated_at":                user.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrUserNotFound
	}

	return nil
}

func toUserDocument(user *entities.User) *UserDocument {
	doc := &UserDocument{
		FullName:                user.FullName,
		Email:                   user.Email,
		PasswordHash:            user.PasswordHash,
		Phone:                   user.Phone,
		DateOfBirth:             user.DateOfBirth,
		Location:                user.Location,
		ProfilePhoto:            user.ProfilePhoto,
		IsVerified:              user.IsVerified,
		VerificationCode:        user.VerificationCode,
		VerificationCodeExpires: user.VerificationCodeExpires,
		ResetCode:               user.ResetCode,
		ResetCodeExpires:        user.ResetCodeExpires,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}

	if user.ID != "" {
		if oid, err := objectIDFromHex(user.ID); err == nil {
			doc.ID = oid
		}
	}

	return doc
}

func toUserEntity(doc *UserDocument) *entities.User {
	return &entities.User{
		ID:                      doc.ID.Hex(),
		FullName:                doc.FullName,
		Email:                   doc.Email,
		PasswordHash:            doc.PasswordHash,
		Phone:                   doc.Phone,
		DateOfBirth:             doc.DateOfBirth,
		Location:                doc.Location,
		ProfilePhoto:            doc.ProfilePhoto,
		IsVerified:              doc.IsVerified,
		VerificationCode:        doc.VerificationCode,
		VerificationCodeExpires: doc.VerificationCodeExpires,
		ResetCode:               doc.ResetCode,
		ResetCodeExpires:        doc.ResetCodeExpires,
		CreatedAt:               doc.CreatedAt,
		UpdatedAt:               doc.UpdatedAt,
	}
}
