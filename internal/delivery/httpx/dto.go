package httpx

import "time"

type CreateOrderRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
	Items []struct {
		ProductID string `json:"product_id"`
		Qty       int    `json:"qty"`
	} `json:"items"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	StockQty    int      `json:"stock_qty"`
	Images      []string `json:"images"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	StockQty    *int     `json:"stock_qty"`
	Images      []string `json:"images"`
}

type CreateBlogRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	CoverImageURL string   `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	CategoryID    string   `json:"category_id"`
}

type UpdateBlogRequest struct {
	Title         *string  `json:"title"`
	Slug          *string  `json:"slug"`
	Content       *string  `json:"content"`
	Excerpt       *string  `json:"excerpt"`
	CoverImageURL *string  `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	CategoryID    *string  `json:"category_id"`
}

type AddCommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

type ReplyCommentRequest struct {
	Content string `json:"content"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Location    string     `json:"location"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}
