package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerDocument struct {
	Name    string `bson:"name"`
	Email   string `bson:"email"`
	Phone   string `bson:"phone"`
	Address string `bson:"address"`
}

type OrderItemDocument struct {
	ProductID     primitive.ObjectID `bson:"product_id"`
	NameSnapshot  string             `bson:"name_snapshot"`
	PriceSnapshot float64            `bson:"price_snapshot"`
	Qty           int                `bson:"qty"`
	LineTotal     float64            `bson:"line_total"`
}

type PaymentDocument struct {
	Provider  string     `bson:"provider"`
	Reference string     `bson:"reference"`
	Status    string     `bson:"status"`
	PaidAt    *time.Time `bson:"paid_at"`
}

type OrderDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Customer    CustomerDocument    `bson:"customer"`
	Items       []OrderItemDocument `bson:"items"`
	TotalAmount float64             `bson:"total_amount"`
	Status      string              `bson:"status"`
	Payment     PaymentDocument     `bson:"payment"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	StockQty    int                `bson:"stock_qty"`
	Images      []string           `bson:"images"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type BlogPostDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Slug          string              `bson:"slug"`
	CoverImageURL string              `bson:"cover_image_url"`
	Excerpt       string              `bson:"excerpt"`
	Content       string              `bson:"content"`
	Status        string              `bson:"status"`
	Tags          []string            `bson:"tags"`
	CategoryID    *primitive.ObjectID `bson:"category_id,omitempty"`
	Views         int                 `bson:"views"`
	AllowComments bool                `bson:"allow_comments"`
	PublishedAt   *time.Time          `bson:"published_at"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}

type CommentReplyDocument struct {
	Name      string    `bson:"name"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
}

type CommentDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	PostID     primitive.ObjectID     `bson:"post_id"`
	Name       string                 `bson:"name"`
	Email      string                 `bson:"email"`
	Content    string                 `bson:"content"`
	IsApproved bool                   `bson:"is_approved"`
	Replies    []CommentReplyDocument `bson:"replies"`
	CreatedAt  time.Time              `bson:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at"`
}

type CategoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type AdminUserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	AuthorRole   string             `bson:"author_role"`
	AvatarLabel  string             `bson:"avatar_label"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Phone        string             `bson:"phone"`
	DateOfBirth  *time.Time         `bson:"date_of_birth,omitempty"`
	Location     string             `bson:"location"`
	ProfilePhoto string             `bson:"profile_photo"`
	IsVerified   bool               `bson:"is_verified"`

	VerificationCode        string     `bson:"verification_code,omitempty"`
	VerificationCodeExpires *time.Time `bson:"verification_code_expires,omitempty"`
	ResetCode               string     `bson:"reset_code,omitempty"`
	ResetCodeExpires        *time.Time `bson:"reset_code_expires,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
