package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Gabrielduah055/menHealthBackend/internal/usecase"
)

type Handlers struct {
	Order     *OrderHandler
	Product   *ProductHandler
	Blog      *BlogHandler
	Comment   *CommentHandler
	Category  *CategoryHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler

	AuthUseCase     *usecase.AuthUseCase
	UserAuthUseCase *usecase.UserAuthUseCase
}

// NewRouter builds the full REST surface. Public storefront routes come
// first, then user auth, then the admin area behind the admin JWT middleware.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.Order.CreateOrder)
		r.Post("/payments/verify", h.Order.VerifyPayment)

		r.Get("/products", h.Product.ListPublic)
		r.Get("/products/{slug}", h.Product.GetBySlug)

		r.Get("/blogs", h.Blog.ListPublic)
		r.Get("/blogs/{slug}", h.Blog.GetBySlug)
		r.Get("/blogs/{id}/comments", h.Blog.ListComments)
		r.Post("/blogs/{id}/comments", h.Blog.AddComment)

		r.Get("/categories", h.Category.List)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/verify-email", h.Auth.VerifyEmail)
			r.Post("/resend-code", h.Auth.ResendCode)
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(RequireUser(h.UserAuthUseCase))
				r.Get("/me", h.Auth.Me)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/login", h.Auth.AdminLogin)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin(h.AuthUseCase))

				r.Get("/dashboard", h.Dashboard.Stats)

				r.Get("/orders", h.Order.ListOrders)
				r.Get("/orders/{id}", h.Order.GetOrder)
				r.Patch("/orders/{id}/status", h.Order.UpdateOrderStatus)

				r.Get("/products", h.Product.ListAdmin)
				r.Post("/products", h.Product.Create)
				r.Get("/products/{id}", h.Product.GetByID)
				r.Put("/products/{id}", h.Product.Update)
				r.Patch("/products/{id}/toggle", h.Product.ToggleActive)

				r.Get("/blogs", h.Blog.ListAdmin)
				r.Post("/blogs", h.Blog.Create)
				r.Get("/blogs/{id}", h.Blog.GetByID)
				r.Put("/blogs/{id}", h.Blog.Update)
				r.Patch("/blogs/{id}/publish", h.Blog.Publish)
				r.Patch("/blogs/{id}/unpublish", h.Blog.Unpublish)

				r.Get("/comments", h.Comment.ListAll)
				r.Get("/comments/post/{postId}", h.Comment.ListForPost)
				r.Patch("/comments/{id}/approve", h.Comment.ToggleApproval)
				r.Post("/comments/{id}/reply", h.Comment.Reply)
				r.Delete("/comments/{id}", h.Comment.Delete)

				r.Post("/categories", h.Category.Create)
				r.Delete("/categories/{id}", h.Category.Delete)
			})
		})
	})

	return r
}
